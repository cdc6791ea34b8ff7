package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/internal/service/pronunciation"
)

var _ pronunciationService = &pronunciationServiceMock{}

type pronunciationServiceMock struct {
	PronounceFunc func(ctx context.Context, input pronunciation.PronounceInput) ([]byte, error)

	calls struct {
		Pronounce []struct {
			Ctx   context.Context
			Input pronunciation.PronounceInput
		}
	}
	lockPronounce sync.RWMutex
}

func (mock *pronunciationServiceMock) Pronounce(ctx context.Context, input pronunciation.PronounceInput) ([]byte, error) {
	if mock.PronounceFunc == nil {
		panic("pronunciationServiceMock.PronounceFunc: method is nil but pronunciationService.Pronounce was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pronunciation.PronounceInput
	}{Ctx: ctx, Input: input}
	mock.lockPronounce.Lock()
	mock.calls.Pronounce = append(mock.calls.Pronounce, callInfo)
	mock.lockPronounce.Unlock()
	return mock.PronounceFunc(ctx, input)
}

func (mock *pronunciationServiceMock) PronounceCalls() []struct {
	Ctx   context.Context
	Input pronunciation.PronounceInput
} {
	mock.lockPronounce.RLock()
	calls := mock.calls.Pronounce
	mock.lockPronounce.RUnlock()
	return calls
}
