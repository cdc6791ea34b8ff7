package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/internal/domain"
	"github.com/heartmarshall/lenslearn/internal/service/vocabulary"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	CreateWordFunc func(ctx context.Context, input vocabulary.CreateWordInput) (*domain.SavedWord, error)
	DeleteWordFunc func(ctx context.Context, input vocabulary.DeleteWordInput) error
	ListWordsFunc  func(ctx context.Context) ([]domain.SavedWord, error)

	calls struct {
		CreateWord []struct {
			Ctx   context.Context
			Input vocabulary.CreateWordInput
		}
		DeleteWord []struct {
			Ctx   context.Context
			Input vocabulary.DeleteWordInput
		}
		ListWords []struct {
			Ctx context.Context
		}
	}
	lockCreateWord sync.RWMutex
	lockDeleteWord sync.RWMutex
	lockListWords  sync.RWMutex
}

func (mock *vocabularyServiceMock) CreateWord(ctx context.Context, input vocabulary.CreateWordInput) (*domain.SavedWord, error) {
	if mock.CreateWordFunc == nil {
		panic("vocabularyServiceMock.CreateWordFunc: method is nil but vocabularyService.CreateWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.CreateWordInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateWord.Lock()
	mock.calls.CreateWord = append(mock.calls.CreateWord, callInfo)
	mock.lockCreateWord.Unlock()
	return mock.CreateWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) CreateWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.CreateWordInput
} {
	mock.lockCreateWord.RLock()
	calls := mock.calls.CreateWord
	mock.lockCreateWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) DeleteWord(ctx context.Context, input vocabulary.DeleteWordInput) error {
	if mock.DeleteWordFunc == nil {
		panic("vocabularyServiceMock.DeleteWordFunc: method is nil but vocabularyService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.DeleteWordInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) DeleteWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.DeleteWordInput
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) ListWords(ctx context.Context) ([]domain.SavedWord, error) {
	if mock.ListWordsFunc == nil {
		panic("vocabularyServiceMock.ListWordsFunc: method is nil but vocabularyService.ListWords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx)
}

func (mock *vocabularyServiceMock) ListWordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
