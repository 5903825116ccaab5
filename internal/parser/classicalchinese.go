package parser

// ClassicalChinese treats every word character as a separate word and
// ignores spaces; the script has no word delimiters.
type ClassicalChinese struct {
	*SpaceDelimited
}

// NewClassicalChinese creates a ClassicalChinese parser sharing sd's
// compiled patterns.
func NewClassicalChinese(sd *SpaceDelimited) *ClassicalChinese {
	return &ClassicalChinese{SpaceDelimited: sd}
}

func (p *ClassicalChinese) Segment(text string, s Settings) ([]Token, error) {
	s.SplitEachChar = true
	s.RemoveSpaces = true
	return p.SpaceDelimited.Segment(text, s)
}
