package rest

import (
	"context"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
	"github.com/heartmarshall/wordahead-backend/internal/service/scoring"
	"github.com/heartmarshall/wordahead-backend/internal/service/translation"
)

type scoringServiceMock struct {
	ProcessTextFunc func(ctx context.Context, input scoring.ProcessTextInput) (*domain.ScoringResult, error)
	calls           []scoring.ProcessTextInput
}

func (m *scoringServiceMock) ProcessText(ctx context.Context, input scoring.ProcessTextInput) (*domain.ScoringResult, error) {
	m.calls = append(m.calls, input)
	if m.ProcessTextFunc == nil {
		panic("scoringServiceMock.ProcessTextFunc: method is nil but ProcessText was just called")
	}
	return m.ProcessTextFunc(ctx, input)
}

type translationServiceMock struct {
	TranslateWordFunc     func(ctx context.Context, input translation.TranslateWordInput) (*domain.WordTranslation, error)
	TranslateSentenceFunc func(ctx context.Context, input translation.TranslateSentenceInput) (*domain.SentenceTranslation, error)
}

func (m *translationServiceMock) TranslateWord(ctx context.Context, input translation.TranslateWordInput) (*domain.WordTranslation, error) {
	if m.TranslateWordFunc == nil {
		panic("translationServiceMock.TranslateWordFunc: method is nil but TranslateWord was just called")
	}
	return m.TranslateWordFunc(ctx, input)
}

func (m *translationServiceMock) TranslateSentence(ctx context.Context, input translation.TranslateSentenceInput) (*domain.SentenceTranslation, error) {
	if m.TranslateSentenceFunc == nil {
		panic("translationServiceMock.TranslateSentenceFunc: method is nil but TranslateSentence was just called")
	}
	return m.TranslateSentenceFunc(ctx, input)
}
