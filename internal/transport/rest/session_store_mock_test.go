package rest

import (
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	FlagsFunc func(sessionID string, actorID int64) domain.SessionFlags

	calls struct {
		Flags []struct {
			SessionID string
			ActorID   int64
		}
	}
	lockFlags sync.RWMutex
}

func (mock *sessionStoreMock) Flags(sessionID string, actorID int64) domain.SessionFlags {
	if mock.FlagsFunc == nil {
		panic("sessionStoreMock.FlagsFunc: method is nil but sessionStore.Flags was just called")
	}
	callInfo := struct {
		SessionID string
		ActorID   int64
	}{
		SessionID: sessionID,
		ActorID:   actorID,
	}
	mock.lockFlags.Lock()
	mock.calls.Flags = append(mock.calls.Flags, callInfo)
	mock.lockFlags.Unlock()
	return mock.FlagsFunc(sessionID, actorID)
}

func (mock *sessionStoreMock) FlagsCalls() []struct {
	SessionID string
	ActorID   int64
} {
	var calls []struct {
		SessionID string
		ActorID   int64
	}
	mock.lockFlags.RLock()
	calls = mock.calls.Flags
	mock.lockFlags.RUnlock()
	return calls
}
