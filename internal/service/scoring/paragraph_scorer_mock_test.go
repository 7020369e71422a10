package scoring

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordahead-backend/internal/provider"
)

var _ paragraphScorer = &paragraphScorerMock{}

type paragraphScorerMock struct {
	ProcessParagraphFunc func(ctx context.Context, text string) ([]provider.WordImportance, error)

	calls struct {
		ProcessParagraph []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockProcessParagraph sync.RWMutex
}

func (mock *paragraphScorerMock) ProcessParagraph(ctx context.Context, text string) ([]provider.WordImportance, error) {
	if mock.ProcessParagraphFunc == nil {
		panic("paragraphScorerMock.ProcessParagraphFunc: method is nil but paragraphScorer.ProcessParagraph was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockProcessParagraph.Lock()
	mock.calls.ProcessParagraph = append(mock.calls.ProcessParagraph, callInfo)
	mock.lockProcessParagraph.Unlock()
	return mock.ProcessParagraphFunc(ctx, text)
}

func (mock *paragraphScorerMock) ProcessParagraphCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockProcessParagraph.RLock()
	calls := mock.calls.ProcessParagraph
	mock.lockProcessParagraph.RUnlock()
	return calls
}
