package translation

import (
	"strings"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
)

// TranslateWordInput holds the parameters for translating one word.
type TranslateWordInput struct {
	Word string
}

// Validate checks that a word was given.
func (i TranslateWordInput) Validate() error {
	if strings.TrimSpace(i.Word) == "" {
		return domain.NewValidationError("word", "No word provided")
	}
	return nil
}

// TranslateSentenceInput holds the parameters for translating a sentence.
// An empty sentence is accepted and echoed back.
type TranslateSentenceInput struct {
	Sentence string
}
