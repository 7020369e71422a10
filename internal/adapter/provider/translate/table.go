package translate

import (
	_ "embed"
	"fmt"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var defaultTable []byte

type tableFile struct {
	Words map[string]tableEntry `yaml:"words"`
}

type tableEntry struct {
	Translation      string         `yaml:"translation"`
	Transliteration  string         `yaml:"transliteration"`
	Root             string         `yaml:"root"`
	CEFRLevel        string         `yaml:"cefr_level"`
	ExampleSentences []tableExample `yaml:"example_sentences"`
}

type tableExample struct {
	English string `yaml:"english"`
	Hebrew  string `yaml:"hebrew"`
}

// parseTable decodes a word table. Keys are normalized so the file may use
// any casing; an entry without a translation is rejected.
func parseTable(data []byte) (map[string]tableEntry, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("translate: parse table: %w", err)
	}

	words := make(map[string]tableEntry, len(f.Words))
	for key, entry := range f.Words {
		norm := domain.NormalizeWord(key)
		if norm == "" {
			return nil, fmt.Errorf("translate: table key %q is empty after normalization", key)
		}
		if entry.Translation == "" {
			return nil, fmt.Errorf("translate: table entry %q has no translation", key)
		}
		if _, dup := words[norm]; dup {
			return nil, fmt.Errorf("translate: duplicate table key %q", norm)
		}
		words[norm] = entry
	}
	return words, nil
}

func (e tableEntry) examples() []domain.ExampleSentence {
	out := make([]domain.ExampleSentence, 0, len(e.ExampleSentences))
	for _, ex := range e.ExampleSentences {
		out = append(out, domain.ExampleSentence{English: ex.English, Hebrew: ex.Hebrew})
	}
	return out
}
