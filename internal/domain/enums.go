package domain

// ParserType selects the tokenizer family used for a language.
type ParserType string

const (
	// ParserSpaceDelimited splits on runs of non-word characters.
	ParserSpaceDelimited ParserType = "spacedel"
	// ParserTurkish is space-delimited with Turkish casing rules.
	ParserTurkish ParserType = "turkish"
	// ParserClassicalChinese emits every word character as its own token.
	ParserClassicalChinese ParserType = "classicalchinese"
	// ParserJapanese needs an external morphological analyzer.
	ParserJapanese ParserType = "japanese"
)

func (p ParserType) String() string { return string(p) }

func (p ParserType) IsValid() bool {
	switch p {
	case ParserSpaceDelimited, ParserTurkish, ParserClassicalChinese, ParserJapanese:
		return true
	}
	return false
}
