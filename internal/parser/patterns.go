package parser

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultPatternCacheSize = 128

// unicodeEscape matches the \uXXXX escape, which RE2 spells \x{XXXX}.
var unicodeEscape = regexp.MustCompile(`\\u([0-9A-Fa-f]{4})`)

// toRE2 rewrites \uXXXX escapes in a character-class fragment into RE2 syntax.
func toRE2(chars string) string {
	return unicodeEscape.ReplaceAllString(chars, `\x{$1}`)
}

// patterns are the compiled regular expressions for one profile.
type patterns struct {
	word      *regexp.Regexp
	wordRune  *regexp.Regexp
	exception *regexp.Regexp
}

func (p *patterns) isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return p.wordRune.MatchString(string(r))
}

// patternCache shares compiled patterns between calls; profiles are few and
// reused for every text of the language.
type patternCache struct {
	cache *lru.Cache[string, *patterns]
}

func newPatternCache(size int) *patternCache {
	if size <= 0 {
		size = defaultPatternCacheSize
	}
	c, err := lru.New[string, *patterns](size)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &patternCache{cache: c}
}

func (c *patternCache) get(wordChars string, exceptions []string) (*patterns, error) {
	key := wordChars + "\x00" + strings.Join(exceptions, "|")
	if p, ok := c.cache.Get(key); ok {
		return p, nil
	}

	p, err := compilePatterns(wordChars, exceptions)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, p)
	return p, nil
}

func compilePatterns(wordChars string, exceptions []string) (*patterns, error) {
	class := "[" + toRE2(wordChars) + "]"

	word, err := regexp.Compile("^" + class + "+")
	if err != nil {
		return nil, fmt.Errorf("compile word characters %q: %w", wordChars, err)
	}
	wordRune := regexp.MustCompile("^" + class + "$")

	p := &patterns{word: word, wordRune: wordRune}
	if len(exceptions) == 0 {
		return p, nil
	}

	// Longest first, so "Mrs." is preferred over a shorter prefix.
	sorted := slices.Clone(exceptions)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	alts := make([]string, len(sorted))
	for i, e := range sorted {
		alts[i] = exceptionPattern(e)
	}
	p.exception, err = regexp.Compile("^(?:" + strings.Join(alts, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("compile sentence exceptions: %w", err)
	}
	return p, nil
}

// exceptionPattern quotes an exception literally, except for bracket
// classes such as [A-Z] which are kept as regex classes.
func exceptionPattern(e string) string {
	var b strings.Builder
	for e != "" {
		if e[0] == '[' {
			if end := strings.IndexByte(e, ']'); end > 1 {
				b.WriteString(toRE2(e[:end+1]))
				e = e[end+1:]
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(e)
		b.WriteString(regexp.QuoteMeta(string(r)))
		e = e[size:]
	}
	return b.String()
}
