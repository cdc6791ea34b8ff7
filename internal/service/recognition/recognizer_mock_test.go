package recognition

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/internal/provider"
)

var _ recognizer = &recognizerMock{}

type recognizerMock struct {
	NameFunc      func() string
	RecognizeFunc func(ctx context.Context, req provider.RecognizeRequest) ([]provider.RecognizedObject, error)

	calls struct {
		Name      []struct{}
		Recognize []struct {
			Ctx context.Context
			Req provider.RecognizeRequest
		}
	}
	lockName      sync.RWMutex
	lockRecognize sync.RWMutex
}

func (mock *recognizerMock) Name() string {
	if mock.NameFunc == nil {
		panic("recognizerMock.NameFunc: method is nil but recognizer.Name was just called")
	}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, struct{}{})
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *recognizerMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *recognizerMock) Recognize(ctx context.Context, req provider.RecognizeRequest) ([]provider.RecognizedObject, error) {
	if mock.RecognizeFunc == nil {
		panic("recognizerMock.RecognizeFunc: method is nil but recognizer.Recognize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.RecognizeRequest
	}{Ctx: ctx, Req: req}
	mock.lockRecognize.Lock()
	mock.calls.Recognize = append(mock.calls.Recognize, callInfo)
	mock.lockRecognize.Unlock()
	return mock.RecognizeFunc(ctx, req)
}

func (mock *recognizerMock) RecognizeCalls() []struct {
	Ctx context.Context
	Req provider.RecognizeRequest
} {
	mock.lockRecognize.RLock()
	calls := mock.calls.Recognize
	mock.lockRecognize.RUnlock()
	return calls
}
