package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
	"github.com/heartmarshall/myenglish-langs/internal/parser"
)

const (
	formatTable  = "table"
	formatJSON   = "json"
	formatPretty = "pretty"
	formatWords  = "words"
)

type profileView struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	ParserType       string   `json:"parser_type"`
	RightToLeft      bool     `json:"right_to_left"`
	ShowRomanization bool     `json:"show_romanization"`
	RemoveSpaces     bool     `json:"remove_spaces"`
	SplitEachChar    bool     `json:"split_each_char"`
	Dictionaries     []string `json:"dictionaries,omitempty"`
	SentenceURI      string   `json:"sentence_translation,omitempty"`
}

func viewOf(l *domain.Language) profileView {
	v := profileView{
		Name:             l.Name,
		ParserType:       l.ParserType.String(),
		RightToLeft:      l.RightToLeft,
		ShowRomanization: l.ShowRomanization,
		RemoveSpaces:     l.RemoveSpaces,
		SplitEachChar:    l.SplitEachChar,
	}
	if l.IsPersisted() {
		v.ID = l.ID.String()
	}
	d := l.Dictionaries()
	v.Dictionaries = d.Term
	v.SentenceURI = d.Sentence
	return v
}

func writeProfiles(w io.Writer, format string, langs []*domain.Language) error {
	switch format {
	case formatJSON:
		views := make([]profileView, len(langs))
		for i, l := range langs {
			views[i] = viewOf(l)
		}
		return writeJSON(w, views)
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPARSER\tDIRECTION\tDICTIONARIES")
		for _, l := range langs {
			dir := "ltr"
			if l.RightToLeft {
				dir = "rtl"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", l.Name, l.ParserType, dir, len(l.Dictionaries().Term))
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatJSON)
}

type tokenView struct {
	Order           int    `json:"order"`
	Text            string `json:"text"`
	IsWord          bool   `json:"is_word"`
	IsEndOfSentence bool   `json:"is_end_of_sentence"`
}

func writeTokens(w io.Writer, format string, tokens []parser.Token) error {
	switch format {
	case formatJSON:
		views := make([]tokenView, len(tokens))
		for i, t := range tokens {
			views[i] = tokenView{Order: t.Order, Text: t.Text, IsWord: t.IsWord, IsEndOfSentence: t.IsEndOfSentence}
		}
		return writeJSON(w, views)
	case formatWords:
		var words []string
		for _, t := range tokens {
			if t.IsWord {
				words = append(words, t.Text)
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(words, "\n"))
		return err
	case formatPretty:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, t := range tokens {
			kind := "-"
			switch {
			case t.IsWord:
				kind = "word"
			case t.IsEndOfSentence:
				kind = "eos"
			}
			fmt.Fprintf(tw, "%d\t%s\t%q\n", t.Order, kind, t.Text)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatPretty, formatWords, formatJSON)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
