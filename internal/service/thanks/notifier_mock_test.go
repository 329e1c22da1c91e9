package thanks

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NameFunc func() string
	SendFunc func(ctx context.Context, n domain.Notification) error

	calls struct {
		Name []struct{}
		Send []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockName sync.RWMutex
	lockSend sync.RWMutex
}

func (mock *notifierMock) Name() string {
	if mock.NameFunc == nil {
		panic("notifierMock.NameFunc: method is nil but notifier.Name was just called")
	}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, struct{}{})
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *notifierMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

func (mock *notifierMock) Send(ctx context.Context, n domain.Notification) error {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{Ctx: ctx, N: n}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, n)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
