package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied to every new Language before a definition is loaded.
const (
	DefaultCharacterSubstitutions  = "´='|`='|’='|‘='|...=…|..=‥"
	DefaultSentenceSplitPattern    = ".!?"
	DefaultSentenceSplitExceptions = "Mr.|Mrs.|Dr.|[A-Z].|Vd.|Vds."
	DefaultWordCharacters          = "a-zA-ZÀ-ÖØ-öø-ȳáéíóúÁÉÍÓÚñÑ"
)

// Language is a language's tokenization and segmentation profile.
// It carries no storage awareness: ID stays uuid.Nil until a repository
// persists it.
type Language struct {
	ID                      uuid.UUID
	Name                    string
	Dict1URI                string
	Dict2URI                string
	SentenceTranslateURI    string
	CharacterSubstitutions  string
	SentenceSplitPattern    string
	SentenceSplitExceptions string
	RemoveSpaces            bool
	SplitEachChar           bool
	RightToLeft             bool
	ShowRomanization        bool
	ParserType              ParserType
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// wordCharacters is always stored normalized, see SetWordCharacters.
	wordCharacters string
}

// NewLanguage returns a Language populated with the default profile.
func NewLanguage() *Language {
	l := &Language{
		CharacterSubstitutions:  DefaultCharacterSubstitutions,
		SentenceSplitPattern:    DefaultSentenceSplitPattern,
		SentenceSplitExceptions: DefaultSentenceSplitExceptions,
		ParserType:              ParserSpaceDelimited,
	}
	l.SetWordCharacters(DefaultWordCharacters)
	return l
}

// WordCharacters returns the regex character-class fragment of word runes
// in the \uXXXX escape form.
func (l *Language) WordCharacters() string {
	return l.wordCharacters
}

// SetWordCharacters stores s after converting legacy \x{XXXX} escapes.
func (l *Language) SetWordCharacters(s string) {
	l.wordCharacters = NormalizeWordCharacters(s)
}

// IsPersisted reports whether the language has been assigned an ID by a store.
func (l *Language) IsPersisted() bool {
	return l.ID != uuid.Nil
}

// Substitution replaces Old with New before a text is segmented.
type Substitution struct {
	Old string
	New string
}

// Substitutions parses CharacterSubstitutions into ordered pairs.
// Pairs without "=" or with an empty left side are skipped.
func (l *Language) Substitutions() []Substitution {
	var subs []Substitution
	for _, pair := range strings.Split(l.CharacterSubstitutions, "|") {
		old, repl, ok := strings.Cut(pair, "=")
		if !ok || old == "" {
			continue
		}
		subs = append(subs, Substitution{Old: old, New: repl})
	}
	return subs
}

// SentenceExceptions splits SentenceSplitExceptions, dropping blanks.
func (l *Language) SentenceExceptions() []string {
	var out []string
	for _, e := range strings.Split(l.SentenceSplitExceptions, "|") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// LanguageDictionaries groups the lookup URIs of a language.
type LanguageDictionaries struct {
	Term     []string
	Sentence string
}

// Dictionaries returns the configured term dictionaries (in order, blanks
// dropped) and the sentence translation URI.
func (l *Language) Dictionaries() LanguageDictionaries {
	d := LanguageDictionaries{Sentence: l.SentenceTranslateURI}
	for _, uri := range []string{l.Dict1URI, l.Dict2URI} {
		if uri != "" {
			d.Term = append(d.Term, uri)
		}
	}
	return d
}

// Validate checks that the profile is usable.
func (l *Language) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if !l.ParserType.IsValid() {
		errs = append(errs, FieldError{Field: "parser_type", Message: "unknown parser type " + string(l.ParserType)})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
