package workflow

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

var _ recognizer = &recognizerMock{}

type recognizerMock struct {
	IdentifyFunc func(ctx context.Context, s client.Session, imageBase64 string, lang client.Language) ([]client.IdentifiedObject, error)

	calls struct {
		Identify []struct {
			Ctx         context.Context
			S           client.Session
			ImageBase64 string
			Lang        client.Language
		}
	}
	lockIdentify sync.RWMutex
}

func (mock *recognizerMock) Identify(ctx context.Context, s client.Session, imageBase64 string, lang client.Language) ([]client.IdentifiedObject, error) {
	if mock.IdentifyFunc == nil {
		panic("recognizerMock.IdentifyFunc: method is nil but recognizer.Identify was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		S           client.Session
		ImageBase64 string
		Lang        client.Language
	}{Ctx: ctx, S: s, ImageBase64: imageBase64, Lang: lang}
	mock.lockIdentify.Lock()
	mock.calls.Identify = append(mock.calls.Identify, callInfo)
	mock.lockIdentify.Unlock()
	return mock.IdentifyFunc(ctx, s, imageBase64, lang)
}

func (mock *recognizerMock) IdentifyCalls() []struct {
	Ctx         context.Context
	S           client.Session
	ImageBase64 string
	Lang        client.Language
} {
	mock.lockIdentify.RLock()
	calls := mock.calls.Identify
	mock.lockIdentify.RUnlock()
	return calls
}
