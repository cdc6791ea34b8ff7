package pronunciation

import (
	"context"
	"sync"

	"github.com/heartmarshall/lenslearn/internal/domain"
)

var _ clipStore = &clipStoreMock{}

type clipStoreMock struct {
	GetManyFunc func(ctx context.Context, keys []domain.ClipKey) (map[domain.ClipKey][]byte, error)
	PutFunc     func(ctx context.Context, clip domain.Clip) error

	calls struct {
		GetMany []struct {
			Ctx  context.Context
			Keys []domain.ClipKey
		}
		Put []struct {
			Ctx  context.Context
			Clip domain.Clip
		}
	}
	lockGetMany sync.RWMutex
	lockPut     sync.RWMutex
}

func (mock *clipStoreMock) GetMany(ctx context.Context, keys []domain.ClipKey) (map[domain.ClipKey][]byte, error) {
	if mock.GetManyFunc == nil {
		panic("clipStoreMock.GetManyFunc: method is nil but clipStore.GetMany was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []domain.ClipKey
	}{Ctx: ctx, Keys: keys}
	mock.lockGetMany.Lock()
	mock.calls.GetMany = append(mock.calls.GetMany, callInfo)
	mock.lockGetMany.Unlock()
	return mock.GetManyFunc(ctx, keys)
}

func (mock *clipStoreMock) GetManyCalls() []struct {
	Ctx  context.Context
	Keys []domain.ClipKey
} {
	mock.lockGetMany.RLock()
	calls := mock.calls.GetMany
	mock.lockGetMany.RUnlock()
	return calls
}

func (mock *clipStoreMock) Put(ctx context.Context, clip domain.Clip) error {
	if mock.PutFunc == nil {
		panic("clipStoreMock.PutFunc: method is nil but clipStore.Put was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Clip domain.Clip
	}{Ctx: ctx, Clip: clip}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, clip)
}

func (mock *clipStoreMock) PutCalls() []struct {
	Ctx  context.Context
	Clip domain.Clip
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
