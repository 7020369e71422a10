package scoring

import (
	"context"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/provider"
)

// ScoreWord classifies a single token by its length once WordPunctuation
// is stripped from both ends: longer words are treated as more important.
func ScoreWord(word string) domain.Importance {
	n := domain.WordLength(word)
	switch {
	case n > 10:
		return 4
	case n > 7:
		return 3
	case n > 5:
		return 2
	case n > 3:
		return 1
	default:
		return 0
	}
}

// Heuristic is the fallback scorer used when the external model is not
// available. It never fails.
type Heuristic struct{}

// NewHeuristic creates a Heuristic scorer.
func NewHeuristic() *Heuristic { return &Heuristic{} }

// ProcessParagraph scores every whitespace-delimited token of text with
// ScoreWord, keeping token order and the original token text.
func (h *Heuristic) ProcessParagraph(_ context.Context, text string) ([]provider.WordImportance, error) {
	tokens := domain.Tokenize(text)
	out := make([]provider.WordImportance, 0, len(tokens))
	for _, tok := range tokens {
		imp := int(ScoreWord(tok))
		out = append(out, provider.WordImportance{Word: tok, Importance: &imp})
	}
	return out, nil
}
