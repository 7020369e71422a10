package scoring

import (
	"strings"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
)

// ProcessTextInput holds the parameters for scoring a text.
// Text is nil when the caller did not provide the field at all.
type ProcessTextInput struct {
	Text *string
}

// Validate checks that text is present and not blank.
func (i ProcessTextInput) Validate() error {
	if i.Text == nil {
		return domain.NewValidationError("text", "No text provided")
	}
	if strings.TrimSpace(*i.Text) == "" {
		return domain.NewValidationError("text", "Empty text")
	}
	return nil
}
