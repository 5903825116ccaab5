package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName prepares a language name for lookup:
//   - trims leading/trailing whitespace
//   - compresses whitespace runs into one space
//   - composes characters (NFC)
//
// Case is preserved; name comparisons are case-insensitive on their own.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
