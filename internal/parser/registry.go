package parser

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/myenglish-langs/internal/config"
	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

// Registry maps parser types to implementations. It is filled once by
// NewRegistry and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	parsers map[domain.ParserType]Parser
}

// Option configures a Registry under construction.
type Option func(*Registry)

// WithParser registers p for tag, replacing any built-in implementation.
// This is how external analyzers (e.g. for Japanese) are plugged in.
func WithParser(tag domain.ParserType, p Parser) Option {
	return func(r *Registry) {
		r.parsers[tag] = p
	}
}

// NewRegistry creates a Registry with the built-in parsers.
func NewRegistry(cfg config.ParserConfig, opts ...Option) *Registry {
	sd := NewSpaceDelimited(cfg.PatternCacheSize)

	r := &Registry{
		parsers: map[domain.ParserType]Parser{
			domain.ParserSpaceDelimited:   sd,
			domain.ParserTurkish:          NewTurkish(sd),
			domain.ParserClassicalChinese: NewClassicalChinese(sd),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the parser registered for tag. It never falls back to a
// default: an unregistered tag yields *domain.UnknownParserError.
func (r *Registry) Resolve(tag domain.ParserType) (Parser, error) {
	p, ok := r.parsers[tag]
	if !ok {
		return nil, &domain.UnknownParserError{Tag: string(tag)}
	}
	return p, nil
}

// Tags returns the registered parser types in sorted order.
func (r *Registry) Tags() []domain.ParserType {
	tags := make([]domain.ParserType, 0, len(r.parsers))
	for t := range r.parsers {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Tokenize splits text with the parser selected by lang.ParserType.
func (r *Registry) Tokenize(lang *domain.Language, text string) ([]Token, error) {
	p, err := r.Resolve(lang.ParserType)
	if err != nil {
		return nil, err
	}

	tokens, err := p.Segment(text, SettingsFor(lang))
	if err != nil {
		return nil, fmt.Errorf("segment %s text: %w", lang.Name, err)
	}
	return tokens, nil
}

// Lowercase folds text with the parser selected by lang.ParserType.
func (r *Registry) Lowercase(lang *domain.Language, text string) (string, error) {
	p, err := r.Resolve(lang.ParserType)
	if err != nil {
		return "", err
	}
	return p.Lowercase(text), nil
}
