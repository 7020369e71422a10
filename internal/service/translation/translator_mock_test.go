package translation

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordahead-backend/internal/domain"
)

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateSentenceFunc func(ctx context.Context, sentence string) (*domain.SentenceTranslation, error)
	TranslateWordFunc     func(ctx context.Context, word string) (*domain.WordTranslation, error)

	calls struct {
		TranslateSentence []struct {
			Ctx      context.Context
			Sentence string
		}
		TranslateWord []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockTranslateSentence sync.RWMutex
	lockTranslateWord     sync.RWMutex
}

func (mock *translatorMock) TranslateSentence(ctx context.Context, sentence string) (*domain.SentenceTranslation, error) {
	if mock.TranslateSentenceFunc == nil {
		panic("translatorMock.TranslateSentenceFunc: method is nil but translator.TranslateSentence was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Sentence string
	}{Ctx: ctx, Sentence: sentence}
	mock.lockTranslateSentence.Lock()
	mock.calls.TranslateSentence = append(mock.calls.TranslateSentence, callInfo)
	mock.lockTranslateSentence.Unlock()
	return mock.TranslateSentenceFunc(ctx, sentence)
}

func (mock *translatorMock) TranslateSentenceCalls() []struct {
	Ctx      context.Context
	Sentence string
} {
	mock.lockTranslateSentence.RLock()
	calls := mock.calls.TranslateSentence
	mock.lockTranslateSentence.RUnlock()
	return calls
}

func (mock *translatorMock) TranslateWord(ctx context.Context, word string) (*domain.WordTranslation, error) {
	if mock.TranslateWordFunc == nil {
		panic("translatorMock.TranslateWordFunc: method is nil but translator.TranslateWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockTranslateWord.Lock()
	mock.calls.TranslateWord = append(mock.calls.TranslateWord, callInfo)
	mock.lockTranslateWord.Unlock()
	return mock.TranslateWordFunc(ctx, word)
}

func (mock *translatorMock) TranslateWordCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockTranslateWord.RLock()
	calls := mock.calls.TranslateWord
	mock.lockTranslateWord.RUnlock()
	return calls
}
