// Package hooks decides which thank affordances accompany history rows,
// diff views and log lines. Listeners are registered once at startup.
package hooks

import (
	"context"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// ToolKind is the form a thank affordance takes.
type ToolKind string

const (
	// ToolThankLink points at the confirmation page for the contribution.
	ToolThankLink ToolKind = "thank-link"
	// ToolThanked is shown once the viewer has thanked the contribution.
	ToolThanked ToolKind = "thanked"
)

// Tool is one affordance attached to a row.
type Tool struct {
	Kind       ToolKind         `json:"kind"`
	Href       string           `json:"href,omitempty"`
	TargetKind domain.EventKind `json:"targetKind"`
	TargetID   int64            `json:"targetId"`
	Recipient  string           `json:"recipient"`
}

// HistoryView is a history row or the newer side of a diff. Previous is
// the older side of the diff, or the row below in history; it may be nil.
type HistoryView struct {
	Viewer    domain.Identity
	Session   domain.SessionFlags
	Revision  *domain.Revision
	Previous  *domain.Revision
	Recipient domain.Identity
}

// LogLineView is one line of an action log listing.
type LogLineView struct {
	Viewer    domain.Identity
	Session   domain.SessionFlags
	Entry     *domain.LogEntry
	Recipient domain.Identity
}

// Listener reacts to rendered rows by contributing tools.
type Listener interface {
	OnHistoryView(ctx context.Context, v HistoryView) []Tool
	OnDiffView(ctx context.Context, v HistoryView) []Tool
	OnLogLine(ctx context.Context, v LogLineView) []Tool
}

// Registry fans a view out to a fixed list of listeners.
type Registry struct {
	listeners []Listener
}

// NewRegistry creates a Registry. The listener list cannot change later.
func NewRegistry(listeners ...Listener) *Registry {
	return &Registry{listeners: append([]Listener(nil), listeners...)}
}

// HistoryTools collects tools for a history row.
func (r *Registry) HistoryTools(ctx context.Context, v HistoryView) []Tool {
	tools := []Tool{}
	for _, l := range r.listeners {
		tools = append(tools, l.OnHistoryView(ctx, v)...)
	}
	return tools
}

// DiffTools collects tools for a diff view.
func (r *Registry) DiffTools(ctx context.Context, v HistoryView) []Tool {
	tools := []Tool{}
	for _, l := range r.listeners {
		tools = append(tools, l.OnDiffView(ctx, v)...)
	}
	return tools
}

// LogLineTools collects tools for a log line.
func (r *Registry) LogLineTools(ctx context.Context, v LogLineView) []Tool {
	tools := []Tool{}
	for _, l := range r.listeners {
		tools = append(tools, l.OnLogLine(ctx, v)...)
	}
	return tools
}
