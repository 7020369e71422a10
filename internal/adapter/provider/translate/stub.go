package translate

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
)

// MockNote is attached to every record the stub produces.
const MockNote = "Mock data - real translation API not yet integrated"

const (
	unknownRoot      = "Unknown"
	defaultCEFRLevel = "B1"
)

// Stub is a static translation provider for MVP. Words come from a small
// embedded table; everything else gets a generic placeholder record.
type Stub struct {
	words map[string]tableEntry
}

// NewStub creates a Stub backed by the embedded word table.
func NewStub() (*Stub, error) {
	return NewStubFromYAML(defaultTable)
}

// NewStubFromYAML creates a Stub backed by the given YAML word table.
func NewStubFromYAML(data []byte) (*Stub, error) {
	words, err := parseTable(data)
	if err != nil {
		return nil, err
	}
	return &Stub{words: words}, nil
}

// TranslateWord looks word up case-insensitively, ignoring surrounding
// punctuation. Unknown words echo the original input in brackets.
func (s *Stub) TranslateWord(_ context.Context, word string) (*domain.WordTranslation, error) {
	entry, ok := s.words[domain.NormalizeWord(word)]
	if !ok {
		return genericWord(word), nil
	}
	return &domain.WordTranslation{
		Word:             word,
		Translation:      entry.Translation,
		Transliteration:  entry.Transliteration,
		Root:             entry.Root,
		CEFRLevel:        entry.CEFRLevel,
		ExampleSentences: entry.examples(),
		Note:             MockNote,
	}, nil
}

// TranslateSentence returns a fixed placeholder translation; the sentence
// itself is only echoed back.
func (s *Stub) TranslateSentence(_ context.Context, sentence string) (*domain.SentenceTranslation, error) {
	return &domain.SentenceTranslation{
		English:         sentence,
		Hebrew:          "[Hebrew translation]",
		Transliteration: "[Transliteration]",
		Note:            MockNote,
	}, nil
}

func genericWord(word string) *domain.WordTranslation {
	bracketed := "[" + word + "]"
	return &domain.WordTranslation{
		Word:            word,
		Translation:     bracketed,
		Transliteration: bracketed,
		Root:            unknownRoot,
		CEFRLevel:       defaultCEFRLevel,
		ExampleSentences: []domain.ExampleSentence{{
			English: fmt.Sprintf("This is an example with %s.", word),
			Hebrew:  fmt.Sprintf("זו דוגמה עם %s.", word),
		}},
		Note: MockNote,
	}
}
