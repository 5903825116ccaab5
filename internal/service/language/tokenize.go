package language

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-langs/internal/parser"
	"github.com/heartmarshall/myenglish-langs/pkg/ctxutil"
)

// Tokenize segments text with the parser of the installed language id.
func (s *Service) Tokenize(ctx context.Context, id uuid.UUID, text string) ([]parser.Token, error) {
	lang, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tokens, err := s.parsers.Tokenize(lang, text)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctxutil.WithLanguageID(ctx, id), "text tokenized",
		slog.String("parser_type", lang.ParserType.String()),
		slog.Int("tokens", len(tokens)),
	)
	return tokens, nil
}

// Lowercase folds text with the casing rules of the installed language id.
func (s *Service) Lowercase(ctx context.Context, id uuid.UUID, text string) (string, error) {
	lang, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.parsers.Lowercase(lang, text)
}
