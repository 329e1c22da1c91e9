package thanks

import (
	"github.com/Wikia/thanksmetoo/internal/domain"
	"sync"
)

var _ linker = &linkerMock{}

type linkerMock struct {
	ProfileURLFunc func(name string) string
	TargetRefFunc  func(page domain.Page) domain.TargetRef

	calls struct {
		ProfileURL []struct {
			Name string
		}
		TargetRef []struct {
			Page domain.Page
		}
	}
	lockProfileURL sync.RWMutex
	lockTargetRef  sync.RWMutex
}

func (mock *linkerMock) ProfileURL(name string) string {
	if mock.ProfileURLFunc == nil {
		panic("linkerMock.ProfileURLFunc: method is nil but linker.ProfileURL was just called")
	}
	callInfo := struct{ Name string }{Name: name}
	mock.lockProfileURL.Lock()
	mock.calls.ProfileURL = append(mock.calls.ProfileURL, callInfo)
	mock.lockProfileURL.Unlock()
	return mock.ProfileURLFunc(name)
}

func (mock *linkerMock) ProfileURLCalls() []struct{ Name string } {
	mock.lockProfileURL.RLock()
	calls := mock.calls.ProfileURL
	mock.lockProfileURL.RUnlock()
	return calls
}

func (mock *linkerMock) TargetRef(page domain.Page) domain.TargetRef {
	if mock.TargetRefFunc == nil {
		panic("linkerMock.TargetRefFunc: method is nil but linker.TargetRef was just called")
	}
	callInfo := struct{ Page domain.Page }{Page: page}
	mock.lockTargetRef.Lock()
	mock.calls.TargetRef = append(mock.calls.TargetRef, callInfo)
	mock.lockTargetRef.Unlock()
	return mock.TargetRefFunc(page)
}

func (mock *linkerMock) TargetRefCalls() []struct{ Page domain.Page } {
	mock.lockTargetRef.RLock()
	calls := mock.calls.TargetRef
	mock.lockTargetRef.RUnlock()
	return calls
}
