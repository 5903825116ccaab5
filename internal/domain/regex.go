package domain

import "regexp"

// legacyHexEscape matches the PCRE-style \x{XXXX} escape.
var legacyHexEscape = regexp.MustCompile(`\\x\{([0-9A-Fa-f]+)\}`)

// NormalizeWordCharacters rewrites legacy \x{XXXX} escapes in a regex
// character-class fragment to the \uXXXX form:
//
//	\x{0600}-\x{06FF}  ->  \u0600-\u06FF
//
// Everything else passes through unchanged. The output never contains the
// input pattern, so applying it twice is the same as applying it once.
func NormalizeWordCharacters(s string) string {
	return legacyHexEscape.ReplaceAllString(s, `\u$1`)
}

var wideHexEscape = regexp.MustCompile(`\\x\{[0-9A-Fa-f]{5,}\}`)

// WideHexEscapes returns the \x{HEX} escapes in s with more than four hex
// digits. Those name runes outside the Basic Multilingual Plane, which the
// four-digit \u form cannot carry.
func WideHexEscapes(s string) []string {
	return wideHexEscape.FindAllString(s, -1)
}
