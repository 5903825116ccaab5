// Package parser splits text into tokens according to a language profile.
//
// Each tokenizer family implements Parser. A Registry maps the closed set of
// domain.ParserType tags to implementations and dispatches Tokenize and
// Lowercase calls for a profile.
package parser

import (
	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

// ParagraphMark is emitted between paragraphs of the input text.
const ParagraphMark = "¶"

// Parser is a tokenizer family.
type Parser interface {
	// Segment splits text into ordered tokens using the profile settings.
	Segment(text string, s Settings) ([]Token, error)
	// Lowercase folds text the way the family compares words.
	Lowercase(text string) string
}

// Token is one segment of parsed text.
type Token struct {
	Text            string
	IsWord          bool
	IsEndOfSentence bool
	Order           int
}

// Settings are the segmentation parameters taken from a language profile.
type Settings struct {
	WordCharacters     string
	SentenceSplitChars string
	SentenceExceptions []string
	Substitutions      []domain.Substitution
	RemoveSpaces       bool
	SplitEachChar      bool
	RightToLeft        bool
}

// SettingsFor extracts segmentation parameters from lang.
func SettingsFor(lang *domain.Language) Settings {
	return Settings{
		WordCharacters:     lang.WordCharacters(),
		SentenceSplitChars: lang.SentenceSplitPattern,
		SentenceExceptions: lang.SentenceExceptions(),
		Substitutions:      lang.Substitutions(),
		RemoveSpaces:       lang.RemoveSpaces,
		SplitEachChar:      lang.SplitEachChar,
		RightToLeft:        lang.RightToLeft,
	}
}

// number assigns Order to every token in place.
func number(tokens []Token) []Token {
	for i := range tokens {
		tokens[i].Order = i
	}
	return tokens
}
