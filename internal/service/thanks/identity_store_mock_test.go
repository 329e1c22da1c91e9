package thanks

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ identityStore = &identityStoreMock{}

type identityStoreMock struct {
	GetByIDFunc   func(ctx context.Context, id int64) (domain.Identity, error)
	GetByNameFunc func(ctx context.Context, name string) (domain.Identity, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockGetByID   sync.RWMutex
	lockGetByName sync.RWMutex
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

func (mock *identityStoreMock) GetByName(ctx context.Context, name string) (domain.Identity, error) {
	if mock.GetByNameFunc == nil {
		panic("identityStoreMock.GetByNameFunc: method is nil but identityStore.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *identityStoreMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}
