package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/provider"
)

// MockWarning is reported with every result produced by the fallback scorer.
const MockWarning = "Using mock data - GP-TSM not available"

const previewLength = 100

// paragraphScorer is implemented by both the external model adapter and
// the Heuristic fallback.
type paragraphScorer interface {
	ProcessParagraph(ctx context.Context, text string) ([]provider.WordImportance, error)
}

// Service scores texts with the scorer selected at startup.
type Service struct {
	scorer paragraphScorer
	mock   bool
	log    *slog.Logger
}

// NewService creates a scoring Service. mock marks the scorer as the
// fallback, which is surfaced to callers as UsingMock plus a warning.
func NewService(log *slog.Logger, scorer paragraphScorer, mock bool) *Service {
	return &Service{
		scorer: scorer,
		mock:   mock,
		log:    log.With("service", "scoring"),
	}
}

// UsingMock reports whether the service runs on the fallback scorer.
func (s *Service) UsingMock() bool { return s.mock }

// ProcessText scores every token of the input text and attaches opacities.
// Either all tokens are scored or an error is returned.
func (s *Service) ProcessText(ctx context.Context, input ProcessTextInput) (*domain.ScoringResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(*input.Text)

	s.log.InfoContext(ctx, "processing text",
		slog.String("text", domain.Preview(text, previewLength)),
		slog.Bool("using_mock", s.mock),
	)

	scored, err := s.scorer.ProcessParagraph(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("score paragraph: %w", err)
	}

	words := make([]domain.WordScore, 0, len(scored))
	for _, item := range scored {
		var importance domain.Importance
		if item.Importance != nil {
			importance = domain.Importance(*item.Importance)
		}
		words = append(words, domain.NewWordScore(item.Word, importance))
	}

	result := &domain.ScoringResult{
		Words:     words,
		UsingMock: s.mock,
	}
	if s.mock {
		warning := MockWarning
		result.Warning = &warning
	}

	s.log.InfoContext(ctx, "text processed", slog.Int("words", len(words)))

	return result, nil
}
