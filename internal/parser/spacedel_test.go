package parser

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

func english() *domain.Language {
	l := domain.NewLanguage()
	l.Name = "English"
	return l
}

// w and nw build expected word and non-word tokens; Order is filled by want.
func w(text string) Token { return Token{Text: text, IsWord: true} }

func nw(text string) Token { return Token{Text: text} }

func eos(text string) Token { return Token{Text: text, IsEndOfSentence: true} }

func want(tokens ...Token) []Token {
	out := slices.Clone(tokens)
	return number(out)
}

func render(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		switch {
		case t.IsWord:
			parts[i] = fmt.Sprintf("W(%q)", t.Text)
		case t.IsEndOfSentence:
			parts[i] = fmt.Sprintf("E(%q)", t.Text)
		default:
			parts[i] = fmt.Sprintf("N(%q)", t.Text)
		}
	}
	return strings.Join(parts, " ")
}

func assertTokens(t *testing.T, got, expected []Token) {
	t.Helper()
	if !slices.Equal(got, expected) {
		t.Errorf("tokens mismatch\n got: %s\nwant: %s", render(got), render(expected))
	}
}

func segment(t *testing.T, p Parser, lang *domain.Language, text string) []Token {
	t.Helper()
	tokens, err := p.Segment(text, SettingsFor(lang))
	if err != nil {
		t.Fatalf("Segment(%q): %v", text, err)
	}
	return tokens
}

func TestSpaceDelimited_Segment(t *testing.T) {
	t.Parallel()

	p := NewSpaceDelimited(8)

	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "sentences and exceptions",
			text: "Hello world. Mr. Smith is here!",
			want: want(w("Hello"), nw(" "), w("world"), eos(". "), w("Mr."), nw(" "),
				w("Smith"), nw(" "), w("is"), nw(" "), w("here"), eos("!")),
		},
		{
			name: "single capital initial is an exception",
			text: "I saw J. Smith.",
			want: want(w("I"), nw(" "), w("saw"), nw(" "), w("J."), nw(" "), w("Smith"), eos(".")),
		},
		{
			name: "paragraphs",
			text: "Hi.\nBye.",
			want: want(w("Hi"), eos("."), eos(ParagraphMark), w("Bye"), eos(".")),
		},
		{
			name: "crlf and empty paragraph",
			text: "Hi.\r\n\r\nBye",
			want: want(w("Hi"), eos("."), eos(ParagraphMark), eos(ParagraphMark), w("Bye")),
		},
		{
			name: "substitutions applied in order",
			text: "It’s done...",
			want: want(w("It"), nw("'"), w("s"), nw(" "), w("done"), nw("…")),
		},
		{
			name: "spaces collapsed and trimmed",
			text: "  a    b  ",
			want: want(w("a"), nw(" "), w("b")),
		},
		{
			name: "accented words",
			text: "El niño comió.",
			want: want(w("El"), nw(" "), w("niño"), nw(" "), w("comió"), eos(".")),
		},
		{
			name: "decomposed input is composed first",
			text: "cafe\u0301",
			want: want(w("caf\u00e9")),
		},
		{
			name: "empty",
			text: "",
			want: want(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertTokens(t, segment(t, p, english(), tt.text), tt.want)
		})
	}
}

func TestSpaceDelimited_ExceptionNeedsWordBoundary(t *testing.T) {
	t.Parallel()

	lang := english()
	lang.SentenceSplitExceptions = "etc"

	got := segment(t, NewSpaceDelimited(8), lang, "etcetera etc.")
	assertTokens(t, got, want(w("etcetera"), nw(" "), w("etc"), eos(".")))
}

func TestSpaceDelimited_ExceptionNotInsideWord(t *testing.T) {
	t.Parallel()

	got := segment(t, NewSpaceDelimited(8), english(), "AMr. x")
	assertTokens(t, got, want(w("AMr"), eos(". "), w("x")))
}

func TestSpaceDelimited_SplitEachChar(t *testing.T) {
	t.Parallel()

	lang := english()
	lang.SplitEachChar = true

	got := segment(t, NewSpaceDelimited(8), lang, "ab c")
	assertTokens(t, got, want(w("a"), nw(" "), w("b"), nw(" "), w("c")))
}

func TestSpaceDelimited_RemoveSpaces(t *testing.T) {
	t.Parallel()

	lang := english()
	lang.RemoveSpaces = true

	got := segment(t, NewSpaceDelimited(8), lang, "ab, cd. ef")
	assertTokens(t, got, want(w("ab"), nw(","), w("cd"), eos("."), w("ef")))
}

func TestSpaceDelimited_RightToLeftStripsMarks(t *testing.T) {
	t.Parallel()

	lang := domain.NewLanguage()
	lang.Name = "Arabic"
	lang.RightToLeft = true
	lang.SentenceSplitExceptions = ""
	lang.SetWordCharacters(`\x{0600}-\x{06FF}\x{FE70}-\x{FEFC}`)

	got := segment(t, NewSpaceDelimited(8), lang, "مرحبا\u200f بالعالم.")
	assertTokens(t, got, want(w("مرحبا"), nw(" "), w("بالعالم"), eos(".")))

	lang.RightToLeft = false
	got = segment(t, NewSpaceDelimited(8), lang, "مرحبا\u200f بالعالم.")
	assertTokens(t, got, want(w("مرحبا"), nw("\u200f "), w("بالعالم"), eos(".")))
}

func TestSpaceDelimited_InvalidWordCharacters(t *testing.T) {
	t.Parallel()

	lang := english()
	lang.SetWordCharacters("z-a")

	if _, err := NewSpaceDelimited(8).Segment("abc", SettingsFor(lang)); err == nil {
		t.Fatal("expected error for invalid word character class")
	}
}

func TestSpaceDelimited_InvalidException(t *testing.T) {
	t.Parallel()

	lang := english()
	lang.SentenceSplitExceptions = "[z-a]."

	if _, err := NewSpaceDelimited(8).Segment("abc", SettingsFor(lang)); err == nil {
		t.Fatal("expected error for invalid exception class")
	}
}

func TestSpaceDelimited_Lowercase(t *testing.T) {
	t.Parallel()

	p := NewSpaceDelimited(8)
	if got := p.Lowercase("HELLO Ünïcode ISTANBUL"); got != "hello ünïcode istanbul" {
		t.Errorf("Lowercase = %q", got)
	}
}

func TestToRE2(t *testing.T) {
	t.Parallel()

	got := toRE2(`a-z\u0600-\u06FF`)
	if got != `a-z\x{0600}-\x{06FF}` {
		t.Errorf("toRE2 = %q", got)
	}
}

func TestExceptionPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Mr.", `Mr\.`},
		{"[A-Z].", `[A-Z]\.`},
		{"a+b", `a\+b`},
		{"[", `\[`},
		{"[]", `\[\]`},
	}
	for _, tt := range tests {
		if got := exceptionPattern(tt.in); got != tt.want {
			t.Errorf("exceptionPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
