package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

var _ wordStore = &wordStoreMock{}

type wordStoreMock struct {
	ListWordsFunc  func(ctx context.Context, s client.Session) ([]client.SavedWord, error)
	CreateWordFunc func(ctx context.Context, s client.Session, w client.NewWord) (*client.SavedWord, error)
	DeleteWordFunc func(ctx context.Context, s client.Session, id uuid.UUID) error

	calls struct {
		ListWords []struct {
			Ctx context.Context
			S   client.Session
		}
		CreateWord []struct {
			Ctx context.Context
			S   client.Session
			W   client.NewWord
		}
		DeleteWord []struct {
			Ctx context.Context
			S   client.Session
			ID  uuid.UUID
		}
	}
	lockListWords  sync.RWMutex
	lockCreateWord sync.RWMutex
	lockDeleteWord sync.RWMutex
}

func (mock *wordStoreMock) ListWords(ctx context.Context, s client.Session) ([]client.SavedWord, error) {
	if mock.ListWordsFunc == nil {
		panic("wordStoreMock.ListWordsFunc: method is nil but wordStore.ListWords was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   client.Session
	}{Ctx: ctx, S: s}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, s)
}

func (mock *wordStoreMock) ListWordsCalls() []struct {
	Ctx context.Context
	S   client.Session
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *wordStoreMock) CreateWord(ctx context.Context, s client.Session, w client.NewWord) (*client.SavedWord, error) {
	if mock.CreateWordFunc == nil {
		panic("wordStoreMock.CreateWordFunc: method is nil but wordStore.CreateWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   client.Session
		W   client.NewWord
	}{Ctx: ctx, S: s, W: w}
	mock.lockCreateWord.Lock()
	mock.calls.CreateWord = append(mock.calls.CreateWord, callInfo)
	mock.lockCreateWord.Unlock()
	return mock.CreateWordFunc(ctx, s, w)
}

func (mock *wordStoreMock) CreateWordCalls() []struct {
	Ctx context.Context
	S   client.Session
	W   client.NewWord
} {
	mock.lockCreateWord.RLock()
	calls := mock.calls.CreateWord
	mock.lockCreateWord.RUnlock()
	return calls
}

func (mock *wordStoreMock) DeleteWord(ctx context.Context, s client.Session, id uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("wordStoreMock.DeleteWordFunc: method is nil but wordStore.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   client.Session
		ID  uuid.UUID
	}{Ctx: ctx, S: s, ID: id}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, s, id)
}

func (mock *wordStoreMock) DeleteWordCalls() []struct {
	Ctx context.Context
	S   client.Session
	ID  uuid.UUID
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}
