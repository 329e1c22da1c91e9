package thanks

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ revisionStore = &revisionStoreMock{}

type revisionStoreMock struct {
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Revision, error)
	HasPredecessorFunc func(ctx context.Context, rev *domain.Revision) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		HasPredecessor []struct {
			Ctx context.Context
			Rev *domain.Revision
		}
	}
	lockGetByID        sync.RWMutex
	lockHasPredecessor sync.RWMutex
}

func (mock *revisionStoreMock) GetByID(ctx context.Context, id int64) (*domain.Revision, error) {
	if mock.GetByIDFunc == nil {
		panic("revisionStoreMock.GetByIDFunc: method is nil but revisionStore.GetByID was just called")
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

func (mock *revisionStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *revisionStoreMock) HasPredecessor(ctx context.Context, rev *domain.Revision) (bool, error) {
	if mock.HasPredecessorFunc == nil {
		panic("revisionStoreMock.HasPredecessorFunc: method is nil but revisionStore.HasPredecessor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev *domain.Revision
	}{Ctx: ctx, Rev: rev}
	mock.lockHasPredecessor.Lock()
	mock.calls.HasPredecessor = append(mock.calls.HasPredecessor, callInfo)
	mock.lockHasPredecessor.Unlock()
	return mock.HasPredecessorFunc(ctx, rev)
}

func (mock *revisionStoreMock) HasPredecessorCalls() []struct {
	Ctx context.Context
	Rev *domain.Revision
} {
	mock.lockHasPredecessor.RLock()
	calls := mock.calls.HasPredecessor
	mock.lockHasPredecessor.RUnlock()
	return calls
}
