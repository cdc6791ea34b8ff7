package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/service/recognition"
)

var _ recognitionService = &recognitionServiceMock{}

type recognitionServiceMock struct {
	IdentifyFunc func(ctx context.Context, input recognition.IdentifyInput) ([]domain.IdentifiedObject, error)

	calls struct {
		Identify []struct {
			Ctx   context.Context
			Input recognition.IdentifyInput
		}
	}
	lockIdentify sync.RWMutex
}

func (mock *recognitionServiceMock) Identify(ctx context.Context, input recognition.IdentifyInput) ([]domain.IdentifiedObject, error) {
	if mock.IdentifyFunc == nil {
		panic("recognitionServiceMock.IdentifyFunc: method is nil but recognitionService.Identify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recognition.IdentifyInput
	}{Ctx: ctx, Input: input}
	mock.lockIdentify.Lock()
	mock.calls.Identify = append(mock.calls.Identify, callInfo)
	mock.lockIdentify.Unlock()
	return mock.IdentifyFunc(ctx, input)
}

func (mock *recognitionServiceMock) IdentifyCalls() []struct {
	Ctx   context.Context
	Input recognition.IdentifyInput
} {
	mock.lockIdentify.RLock()
	calls := mock.calls.Identify
	mock.lockIdentify.RUnlock()
	return calls
}
