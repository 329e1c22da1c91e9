package hooks

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ identityStore = &identityStoreMock{}

type identityStoreMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (domain.Identity, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *identityStoreMock) GetByID(ctx context.Context, id int64) (domain.Identity, error) {
	if mock.GetByIDFunc == nil {
		panic("identityStoreMock.GetByIDFunc: method is nil but identityStore.GetByID was just called")
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

func (mock *identityStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
