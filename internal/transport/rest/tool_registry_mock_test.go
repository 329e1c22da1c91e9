package rest

import (
	"context"
	"github.com/Wikia/thanksmetoo/internal/hooks"
	"sync"
)

var _ toolRegistry = &toolRegistryMock{}

type toolRegistryMock struct {
	DiffToolsFunc    func(ctx context.Context, v hooks.HistoryView) []hooks.Tool
	HistoryToolsFunc func(ctx context.Context, v hooks.HistoryView) []hooks.Tool
	LogLineToolsFunc func(ctx context.Context, v hooks.LogLineView) []hooks.Tool

	calls struct {
		DiffTools []struct {
			Ctx context.Context
			V   hooks.HistoryView
		}
		HistoryTools []struct {
			Ctx context.Context
			V   hooks.HistoryView
		}
		LogLineTools []struct {
			Ctx context.Context
			V   hooks.LogLineView
		}
	}
	lockDiffTools    sync.RWMutex
	lockHistoryTools sync.RWMutex
	lockLogLineTools sync.RWMutex
}

func (mock *toolRegistryMock) DiffTools(ctx context.Context, v hooks.HistoryView) []hooks.Tool {
	if mock.DiffToolsFunc == nil {
		panic("toolRegistryMock.DiffToolsFunc: method is nil but toolRegistry.DiffTools was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   hooks.HistoryView
	}{Ctx: ctx, V: v}
	mock.lockDiffTools.Lock()
	mock.calls.DiffTools = append(mock.calls.DiffTools, callInfo)
	mock.lockDiffTools.Unlock()
	return mock.DiffToolsFunc(ctx, v)
}

func (mock *toolRegistryMock) DiffToolsCalls() []struct {
	Ctx context.Context
	V   hooks.HistoryView
} {
	mock.lockDiffTools.RLock()
	calls := mock.calls.DiffTools
	mock.lockDiffTools.RUnlock()
	return calls
}

func (mock *toolRegistryMock) HistoryTools(ctx context.Context, v hooks.HistoryView) []hooks.Tool {
	if mock.HistoryToolsFunc == nil {
		panic("toolRegistryMock.HistoryToolsFunc: method is nil but toolRegistry.HistoryTools was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   hooks.HistoryView
	}{Ctx: ctx, V: v}
	mock.lockHistoryTools.Lock()
	mock.calls.HistoryTools = append(mock.calls.HistoryTools, callInfo)
	mock.lockHistoryTools.Unlock()
	return mock.HistoryToolsFunc(ctx, v)
}

func (mock *toolRegistryMock) HistoryToolsCalls() []struct {
	Ctx context.Context
	V   hooks.HistoryView
} {
	mock.lockHistoryTools.RLock()
	calls := mock.calls.HistoryTools
	mock.lockHistoryTools.RUnlock()
	return calls
}

func (mock *toolRegistryMock) LogLineTools(ctx context.Context, v hooks.LogLineView) []hooks.Tool {
	if mock.LogLineToolsFunc == nil {
		panic("toolRegistryMock.LogLineToolsFunc: method is nil but toolRegistry.LogLineTools was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   hooks.LogLineView
	}{Ctx: ctx, V: v}
	mock.lockLogLineTools.Lock()
	mock.calls.LogLineTools = append(mock.calls.LogLineTools, callInfo)
	mock.lockLogLineTools.Unlock()
	return mock.LogLineToolsFunc(ctx, v)
}

func (mock *toolRegistryMock) LogLineToolsCalls() []struct {
	Ctx context.Context
	V   hooks.LogLineView
} {
	mock.lockLogLineTools.RLock()
	calls := mock.calls.LogLineTools
	mock.lockLogLineTools.RUnlock()
	return calls
}
