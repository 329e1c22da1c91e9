package rest

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/domain"
	"github.com/Wikia/thanksmetoo/internal/service/thanks"
	"sync"
)

var _ thanksService = &thanksServiceMock{}

type thanksServiceMock struct {
	ConfirmationFunc       func(par string) thanks.Confirmation
	ListLogFunc            func(ctx context.Context, input thanks.ListLogInput) ([]thanks.LogItem, error)
	LoadActorFunc          func(ctx context.Context, actorID int64, fallbackName string) (domain.Identity, error)
	SubmitConfirmationFunc func(ctx context.Context, req thanks.Request, par string) (thanks.ThankedNotice, error)
	ThankFunc              func(ctx context.Context, req thanks.Request, input thanks.ThankInput) (thanks.DispatchResult, error)

	calls struct {
		Confirmation []struct {
			Par string
		}
		ListLog []struct {
			Ctx   context.Context
			Input thanks.ListLogInput
		}
		LoadActor []struct {
			Ctx          context.Context
			ActorID      int64
			FallbackName string
		}
		SubmitConfirmation []struct {
			Ctx context.Context
			Req thanks.Request
			Par string
		}
		Thank []struct {
			Ctx   context.Context
			Req   thanks.Request
			Input thanks.ThankInput
		}
	}
	lockConfirmation       sync.RWMutex
	lockListLog            sync.RWMutex
	lockLoadActor          sync.RWMutex
	lockSubmitConfirmation sync.RWMutex
	lockThank              sync.RWMutex
}

func (mock *thanksServiceMock) Confirmation(par string) thanks.Confirmation {
	if mock.ConfirmationFunc == nil {
		panic("thanksServiceMock.ConfirmationFunc: method is nil but thanksService.Confirmation was just called")
	}
	callInfo := struct{ Par string }{Par: par}
	mock.lockConfirmation.Lock()
	mock.calls.Confirmation = append(mock.calls.Confirmation, callInfo)
	mock.lockConfirmation.Unlock()
	return mock.ConfirmationFunc(par)
}

func (mock *thanksServiceMock) ConfirmationCalls() []struct{ Par string } {
	mock.lockConfirmation.RLock()
	calls := mock.calls.Confirmation
	mock.lockConfirmation.RUnlock()
	return calls
}

func (mock *thanksServiceMock) ListLog(ctx context.Context, input thanks.ListLogInput) ([]thanks.LogItem, error) {
	if mock.ListLogFunc == nil {
		panic("thanksServiceMock.ListLogFunc: method is nil but thanksService.ListLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input thanks.ListLogInput
	}{Ctx: ctx, Input: input}
	mock.lockListLog.Lock()
	mock.calls.ListLog = append(mock.calls.ListLog, callInfo)
	mock.lockListLog.Unlock()
	return mock.ListLogFunc(ctx, input)
}

func (mock *thanksServiceMock) ListLogCalls() []struct {
	Ctx   context.Context
	Input thanks.ListLogInput
} {
	mock.lockListLog.RLock()
	calls := mock.calls.ListLog
	mock.lockListLog.RUnlock()
	return calls
}

func (mock *thanksServiceMock) LoadActor(ctx context.Context, actorID int64, fallbackName string) (domain.Identity, error) {
	if mock.LoadActorFunc == nil {
		panic("thanksServiceMock.LoadActorFunc: method is nil but thanksService.LoadActor was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ActorID      int64
		FallbackName string
	}{Ctx: ctx, ActorID: actorID, FallbackName: fallbackName}
	mock.lockLoadActor.Lock()
	mock.calls.LoadActor = append(mock.calls.LoadActor, callInfo)
	mock.lockLoadActor.Unlock()
	return mock.LoadActorFunc(ctx, actorID, fallbackName)
}

func (mock *thanksServiceMock) LoadActorCalls() []struct {
	Ctx          context.Context
	ActorID      int64
	FallbackName string
} {
	mock.lockLoadActor.RLock()
	calls := mock.calls.LoadActor
	mock.lockLoadActor.RUnlock()
	return calls
}

func (mock *thanksServiceMock) SubmitConfirmation(ctx context.Context, req thanks.Request, par string) (thanks.ThankedNotice, error) {
	if mock.SubmitConfirmationFunc == nil {
		panic("thanksServiceMock.SubmitConfirmationFunc: method is nil but thanksService.SubmitConfirmation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req thanks.Request
		Par string
	}{Ctx: ctx, Req: req, Par: par}
	mock.lockSubmitConfirmation.Lock()
	mock.calls.SubmitConfirmation = append(mock.calls.SubmitConfirmation, callInfo)
	mock.lockSubmitConfirmation.Unlock()
	return mock.SubmitConfirmationFunc(ctx, req, par)
}

func (mock *thanksServiceMock) SubmitConfirmationCalls() []struct {
	Ctx context.Context
	Req thanks.Request
	Par string
} {
	mock.lockSubmitConfirmation.RLock()
	calls := mock.calls.SubmitConfirmation
	mock.lockSubmitConfirmation.RUnlock()
	return calls
}

func (mock *thanksServiceMock) Thank(ctx context.Context, req thanks.Request, input thanks.ThankInput) (thanks.DispatchResult, error) {
	if mock.ThankFunc == nil {
		panic("thanksServiceMock.ThankFunc: method is nil but thanksService.Thank was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Req   thanks.Request
		Input thanks.ThankInput
	}{Ctx: ctx, Req: req, Input: input}
	mock.lockThank.Lock()
	mock.calls.Thank = append(mock.calls.Thank, callInfo)
	mock.lockThank.Unlock()
	return mock.ThankFunc(ctx, req, input)
}

func (mock *thanksServiceMock) ThankCalls() []struct {
	Ctx   context.Context
	Req   thanks.Request
	Input thanks.ThankInput
} {
	mock.lockThank.RLock()
	calls := mock.calls.Thank
	mock.lockThank.RUnlock()
	return calls
}
