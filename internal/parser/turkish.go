package parser

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Turkish segments like SpaceDelimited but lowercases with Turkish rules,
// so "I" folds to "ı" and "İ" to "i".
type Turkish struct {
	*SpaceDelimited
}

// NewTurkish creates a Turkish parser sharing sd's compiled patterns.
func NewTurkish(sd *SpaceDelimited) *Turkish {
	return &Turkish{SpaceDelimited: sd}
}

func (p *Turkish) Lowercase(text string) string {
	return cases.Lower(language.Turkish).String(text)
}
