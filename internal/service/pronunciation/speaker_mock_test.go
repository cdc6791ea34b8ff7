package pronunciation

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

var _ speaker = &speakerMock{}

type speakerMock struct {
	NameFunc  func() string
	SpeakFunc func(ctx context.Context, text string, lang domain.Language) ([]byte, error)

	calls struct {
		Name  []struct{}
		Speak []struct {
			Ctx  context.Context
			Text string
			Lang domain.Language
		}
	}
	lockName  sync.RWMutex
	lockSpeak sync.RWMutex
}

func (mock *speakerMock) Name() string {
	if mock.NameFunc == nil {
		panic("speakerMock.NameFunc: method is nil but speaker.Name was just called")
	}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, struct{}{})
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *speakerMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *speakerMock) Speak(ctx context.Context, text string, lang domain.Language) ([]byte, error) {
	if mock.SpeakFunc == nil {
		panic("speakerMock.SpeakFunc: method is nil but speaker.Speak was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
		Lang domain.Language
	}{Ctx: ctx, Text: text, Lang: lang}
	mock.lockSpeak.Lock()
	mock.calls.Speak = append(mock.calls.Speak, callInfo)
	mock.lockSpeak.Unlock()
	return mock.SpeakFunc(ctx, text, lang)
}

func (mock *speakerMock) SpeakCalls() []struct {
	Ctx  context.Context
	Text string
	Lang domain.Language
} {
	mock.lockSpeak.RLock()
	calls := mock.calls.Speak
	mock.lockSpeak.RUnlock()
	return calls
}
