package workflow

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

var _ pronouncer = &pronouncerMock{}

type pronouncerMock struct {
	PronounceFunc func(ctx context.Context, s client.Session, text string, lang client.Language) (*client.Audio, error)

	calls struct {
		Pronounce []struct {
			Ctx  context.Context
			S    client.Session
			Text string
			Lang client.Language
		}
	}
	lockPronounce sync.RWMutex
}

func (mock *pronouncerMock) Pronounce(ctx context.Context, s client.Session, text string, lang client.Language) (*client.Audio, error) {
	if mock.PronounceFunc == nil {
		panic("pronouncerMock.PronounceFunc: method is nil but pronouncer.Pronounce was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		S    client.Session
		Text string
		Lang client.Language
	}{Ctx: ctx, S: s, Text: text, Lang: lang}
	mock.lockPronounce.Lock()
	mock.calls.Pronounce = append(mock.calls.Pronounce, callInfo)
	mock.lockPronounce.Unlock()
	return mock.PronounceFunc(ctx, s, text, lang)
}

func (mock *pronouncerMock) PronounceCalls() []struct {
	Ctx  context.Context
	S    client.Session
	Text string
	Lang client.Language
} {
	mock.lockPronounce.RLock()
	calls := mock.calls.Pronounce
	mock.lockPronounce.RUnlock()
	return calls
}
