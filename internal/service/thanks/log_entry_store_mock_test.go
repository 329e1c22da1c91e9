package thanks

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ logEntryStore = &logEntryStoreMock{}

type logEntryStoreMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.LogEntry, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *logEntryStoreMock) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("logEntryStoreMock.GetByIDFunc: method is nil but logEntryStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *logEntryStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
