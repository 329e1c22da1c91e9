package thanks

import (
	"sync"
)

var _ rateLimiter = &rateLimiterMock{}

type rateLimiterMock struct {
	AllowFunc func(actorID int64, category string) bool

	calls struct {
		Allow []struct {
			ActorID  int64
			Category string
		}
	}
	lockAllow sync.RWMutex
}

func (mock *rateLimiterMock) Allow(actorID int64, category string) bool {
	if mock.AllowFunc == nil {
		panic("rateLimiterMock.AllowFunc: method is nil but rateLimiter.Allow was just called")
	}
	callInfo := struct {
		ActorID  int64
		Category string
	}{ActorID: actorID, Category: category}
	mock.lockAllow.Lock()
	mock.calls.Allow = append(mock.calls.Allow, callInfo)
	mock.lockAllow.Unlock()
	return mock.AllowFunc(actorID, category)
}

func (mock *rateLimiterMock) AllowCalls() []struct {
	ActorID  int64
	Category string
} {
	mock.lockAllow.RLock()
	calls := mock.calls.Allow
	mock.lockAllow.RUnlock()
	return calls
}
