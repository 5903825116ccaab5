package definition

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

// document is the canonical key order used when writing a definition.
type document struct {
	Name                    string `yaml:"name"`
	Dict1                   string `yaml:"dict_1,omitempty"`
	Dict2                   string `yaml:"dict_2,omitempty"`
	SentenceTranslation     string `yaml:"sentence_translation,omitempty"`
	ParserType              string `yaml:"parser_type"`
	CharacterSubstitutions  string `yaml:"character_substitutions"`
	SplitSentences          string `yaml:"split_sentences"`
	SplitSentenceExceptions string `yaml:"split_sentence_exceptions"`
	WordChars               string `yaml:"word_chars"`
	ShowRomanization        bool   `yaml:"show_romanization"`
	RightToLeft             bool   `yaml:"right_to_left"`
}

// Marshal renders lang as a definition document that Load reads back into
// an equal profile. Word characters are written in their normalized form.
// RemoveSpaces and SplitEachChar have no definition key and are not written.
func Marshal(lang *domain.Language) ([]byte, error) {
	out, err := yaml.Marshal(document{
		Name:                    lang.Name,
		Dict1:                   lang.Dict1URI,
		Dict2:                   lang.Dict2URI,
		SentenceTranslation:     lang.SentenceTranslateURI,
		ParserType:              string(lang.ParserType),
		CharacterSubstitutions:  lang.CharacterSubstitutions,
		SplitSentences:          lang.SentenceSplitPattern,
		SplitSentenceExceptions: lang.SentenceSplitExceptions,
		WordChars:               lang.WordCharacters(),
		ShowRomanization:        lang.ShowRomanization,
		RightToLeft:             lang.RightToLeft,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal definition %s: %w", lang.Name, err)
	}
	return out, nil
}
