package thanks

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ thanksLog = &thanksLogMock{}

type thanksLogMock struct {
	AppendFunc func(ctx context.Context, rec domain.DedupRecord) (bool, error)
	ExistsFunc func(ctx context.Context, actorID int64, key string) (bool, error)
	ListFunc   func(ctx context.Context, filter domain.ThanksLogFilter) ([]domain.ThanksLogEntry, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Rec domain.DedupRecord
		}
		Exists []struct {
			Ctx     context.Context
			ActorID int64
			Key     string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ThanksLogFilter
		}
	}
	lockAppend sync.RWMutex
	lockExists sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *thanksLogMock) Append(ctx context.Context, rec domain.DedupRecord) (bool, error) {
	if mock.AppendFunc == nil {
		panic("thanksLogMock.AppendFunc: method is nil but thanksLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.DedupRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *thanksLogMock) AppendCalls() []struct {
	Ctx context.Context
	Rec domain.DedupRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *thanksLogMock) Exists(ctx context.Context, actorID int64, key string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("thanksLogMock.ExistsFunc: method is nil but thanksLog.Exists was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID int64
		Key     string
	}{Ctx: ctx, ActorID: actorID, Key: key}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, actorID, key)
}

func (mock *thanksLogMock) ExistsCalls() []struct {
	Ctx     context.Context
	ActorID int64
	Key     string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *thanksLogMock) List(ctx context.Context, filter domain.ThanksLogFilter) ([]domain.ThanksLogEntry, error) {
	if mock.ListFunc == nil {
		panic("thanksLogMock.ListFunc: method is nil but thanksLog.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ThanksLogFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *thanksLogMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ThanksLogFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
