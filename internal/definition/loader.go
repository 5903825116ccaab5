// Package definition builds language profiles from YAML definition documents.
// A definition is a flat mapping of keys to scalars; recognised keys are
// assigned onto a profile that starts from domain.NewLanguage defaults.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

// target identifies the profile field a definition key is written to.
type target int

const (
	targetName target = iota
	targetDict1URI
	targetDict2URI
	targetSentenceTranslateURI
	targetShowRomanization
	targetRightToLeft
	targetParserType
	targetCharacterSubstitutions
	targetSentenceSplitPattern
	targetSentenceSplitExceptions
	targetWordCharacters
)

// keyTable maps definition keys to profile fields. The table is closed: any
// other key is ignored. No two keys share a target, so the order keys are
// applied in never matters.
var keyTable = map[string]target{
	"name":                      targetName,
	"dict_1":                    targetDict1URI,
	"dict_2":                    targetDict2URI,
	"sentence_translation":      targetSentenceTranslateURI,
	"show_romanization":         targetShowRomanization,
	"right_to_left":             targetRightToLeft,
	"parser_type":               targetParserType,
	"character_substitutions":   targetCharacterSubstitutions,
	"split_sentences":           targetSentenceSplitPattern,
	"split_sentence_exceptions": targetSentenceSplitExceptions,
	"word_chars":                targetWordCharacters,
}

// Loader decodes definition documents.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log.With("component", "definition")}
}

// LoadFile reads and decodes the definition at path. Read failures are
// returned wrapped as-is; malformed content yields *domain.DefinitionParseError.
func (l *Loader) LoadFile(path string) (*domain.Language, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load reads a definition document from r. source names the document in
// errors and logs.
func (l *Loader) Load(r io.Reader, source string) (*domain.Language, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", source, err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, &domain.DefinitionParseError{Source: source, Err: err}
	}

	return l.Decode(doc, source), nil
}

var (
	errEmptyDocument = errors.New("empty document")
	errNotMapping    = errors.New("document is not a mapping")
)

// parseDocument decodes data into a key to value mapping. Scalars other than
// booleans and nulls keep their document text, so "1.50" stays "1.50".
func parseDocument(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyDocument
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errEmptyDocument
	}

	node := resolveAlias(root.Content[0])
	switch {
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
		return nil, errEmptyDocument
	case node.Kind != yaml.MappingNode:
		return nil, errNotMapping
	}

	doc := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, dup := doc[key]; dup {
			return nil, fmt.Errorf("line %d: key %q already defined", node.Content[i].Line, key)
		}
		v, err := nodeValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		doc[key] = v
	}
	return doc, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeValue(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.ScalarNode {
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	}
	return n.Value, nil
}

// Decode builds a profile from an already parsed document. Unknown keys are
// ignored; a value that does not fit its field leaves the default in place.
func (l *Loader) Decode(doc map[string]any, source string) *domain.Language {
	lang := domain.NewLanguage()

	for key, raw := range doc {
		t, ok := keyTable[key]
		if !ok {
			l.log.Debug("ignoring unknown definition key",
				slog.String("source", source),
				slog.String("key", key),
			)
			continue
		}
		if t == targetWordCharacters {
			l.warnWideEscapes(source, raw)
		}
		if !assign(lang, t, coerce(raw)) {
			l.log.Warn("definition value does not fit field, keeping default",
				slog.String("source", source),
				slog.String("key", key),
				slog.Any("value", raw),
			)
		}
	}

	return lang
}

// warnWideEscapes flags \x{HEX} escapes beyond four hex digits. They are
// normalized verbatim and the parser reads only four digits after \u, so the
// character class ends up covering other runes than intended.
func (l *Loader) warnWideEscapes(source string, raw any) {
	s, ok := raw.(string)
	if !ok {
		return
	}
	if wide := domain.WideHexEscapes(s); len(wide) > 0 {
		l.log.Warn("word_chars escape exceeds four hex digits",
			slog.String("source", source),
			slog.Any("escapes", wide),
		)
	}
}

// coerce turns the strings "true"/"false" (any case) into booleans.
func coerce(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}

func assign(lang *domain.Language, t target, v any) bool {
	if v == nil {
		return true
	}

	switch t {
	case targetShowRomanization:
		return setBool(&lang.ShowRomanization, v)
	case targetRightToLeft:
		return setBool(&lang.RightToLeft, v)
	}

	s, ok := scalarString(v)
	if !ok {
		return false
	}

	switch t {
	case targetName:
		lang.Name = s
	case targetDict1URI:
		lang.Dict1URI = s
	case targetDict2URI:
		lang.Dict2URI = s
	case targetSentenceTranslateURI:
		lang.SentenceTranslateURI = s
	case targetParserType:
		lang.ParserType = domain.ParserType(s)
	case targetCharacterSubstitutions:
		lang.CharacterSubstitutions = s
	case targetSentenceSplitPattern:
		lang.SentenceSplitPattern = s
	case targetSentenceSplitExceptions:
		lang.SentenceSplitExceptions = s
	case targetWordCharacters:
		lang.SetWordCharacters(s)
	}
	return true
}

func setBool(dst *bool, v any) bool {
	b, ok := v.(bool)
	if !ok {
		return false
	}
	*dst = b
	return true
}

// scalarString renders a scalar for a string field. Parsed documents carry
// numbers as their document text; the numeric cases serve Decode callers
// that build the mapping themselves.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int, int64, uint64, float64:
		return fmt.Sprint(x), true
	}
	return "", false
}
