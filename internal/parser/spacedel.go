package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(` {2,}`)

// bidiMarks are directional marks that carry no text in right-to-left scripts.
const bidiMarks = "\u200e\u200f\u061c"

// SpaceDelimited tokenizes languages whose words are separated by spaces and
// punctuation. Word runes are defined by the profile's word characters.
type SpaceDelimited struct {
	patterns *patternCache
}

// NewSpaceDelimited creates a SpaceDelimited parser keeping up to cacheSize
// compiled profiles.
func NewSpaceDelimited(cacheSize int) *SpaceDelimited {
	return &SpaceDelimited{patterns: newPatternCache(cacheSize)}
}

// Segment splits text into word and non-word tokens. Paragraphs are
// separated by a ParagraphMark token that ends the sentence.
func (p *SpaceDelimited) Segment(text string, s Settings) ([]Token, error) {
	pats, err := p.patterns.get(s.WordCharacters, s.SentenceExceptions)
	if err != nil {
		return nil, err
	}

	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	tokens := []Token{}
	paras := strings.Split(text, "\n")
	for i, para := range paras {
		tokens = segmentParagraph(tokens, para, s, pats)
		if i < len(paras)-1 {
			tokens = append(tokens, Token{Text: ParagraphMark, IsEndOfSentence: true})
		}
	}

	return number(tokens), nil
}

// Lowercase folds text with language-neutral Unicode rules.
func (p *SpaceDelimited) Lowercase(text string) string {
	return cases.Lower(language.Und).String(text)
}

func segmentParagraph(tokens []Token, para string, s Settings, pats *patterns) []Token {
	for _, sub := range s.Substitutions {
		para = strings.ReplaceAll(para, sub.Old, sub.New)
	}
	para = multiSpace.ReplaceAllString(strings.TrimSpace(para), " ")
	if s.SplitEachChar {
		para = splitEachChar(para)
	}

	var run strings.Builder
	flush := func() {
		tokens = appendNonWord(tokens, run.String(), s)
		run.Reset()
	}

	pos := 0
	for pos < len(para) {
		if m := matchException(para, pos, pats); m != "" {
			flush()
			tokens = append(tokens, Token{Text: m, IsWord: true})
			pos += len(m)
			continue
		}
		if loc := pats.word.FindStringIndex(para[pos:]); loc != nil {
			flush()
			tokens = append(tokens, Token{Text: para[pos : pos+loc[1]], IsWord: true})
			pos += loc[1]
			continue
		}
		r, size := utf8.DecodeRuneInString(para[pos:])
		run.WriteRune(r)
		pos += size
	}
	flush()

	return tokens
}

// matchException returns the sentence exception starting at pos, if any.
// Exceptions only match on word boundaries.
func matchException(para string, pos int, pats *patterns) string {
	if pats.exception == nil {
		return ""
	}
	if pos > 0 {
		prev, _ := utf8.DecodeLastRuneInString(para[:pos])
		if pats.isWordRune(prev) {
			return ""
		}
	}

	m := pats.exception.FindString(para[pos:])
	if m == "" {
		return ""
	}

	last, _ := utf8.DecodeLastRuneInString(m)
	if pats.isWordRune(last) {
		next, size := utf8.DecodeRuneInString(para[pos+len(m):])
		if size > 0 && pats.isWordRune(next) {
			return ""
		}
	}
	return m
}

func appendNonWord(tokens []Token, run string, s Settings) []Token {
	if s.RightToLeft {
		run = strings.Map(func(r rune) rune {
			if strings.ContainsRune(bidiMarks, r) {
				return -1
			}
			return r
		}, run)
	}
	if s.RemoveSpaces {
		run = strings.ReplaceAll(run, " ", "")
	}
	if run == "" {
		return tokens
	}
	return append(tokens, Token{
		Text:            run,
		IsEndOfSentence: strings.ContainsAny(run, s.SentenceSplitChars),
	})
}

// splitEachChar puts a space after every non-space rune so each one
// becomes its own token.
func splitEachChar(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r == ' ' {
			continue
		}
		b.WriteRune(r)
		b.WriteByte(' ')
	}
	return strings.TrimSuffix(b.String(), " ")
}
