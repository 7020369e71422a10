package translation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
)

// translator is implemented by the static stub and by any real
// translation client that replaces it.
type translator interface {
	TranslateWord(ctx context.Context, word string) (*domain.WordTranslation, error)
	TranslateSentence(ctx context.Context, sentence string) (*domain.SentenceTranslation, error)
}

// Service provides English to Hebrew translations.
type Service struct {
	translator translator
	log        *slog.Logger
}

// NewService creates a new translation service.
func NewService(log *slog.Logger, translator translator) *Service {
	return &Service{
		translator: translator,
		log:        log.With("service", "translation"),
	}
}

// TranslateWord returns the translation record for a single word.
func (s *Service) TranslateWord(ctx context.Context, input TranslateWordInput) (*domain.WordTranslation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := s.translator.TranslateWord(ctx, input.Word)
	if err != nil {
		return nil, fmt.Errorf("translate word: %w", err)
	}

	s.log.DebugContext(ctx, "word translated",
		slog.String("word", input.Word),
		slog.String("cefr_level", result.CEFRLevel),
	)
	return result, nil
}

// TranslateSentence returns the translation record for a sentence.
func (s *Service) TranslateSentence(ctx context.Context, input TranslateSentenceInput) (*domain.SentenceTranslation, error) {
	result, err := s.translator.TranslateSentence(ctx, input.Sentence)
	if err != nil {
		return nil, fmt.Errorf("translate sentence: %w", err)
	}

	s.log.DebugContext(ctx, "sentence translated", slog.Int("length", len(input.Sentence)))
	return result, nil
}
