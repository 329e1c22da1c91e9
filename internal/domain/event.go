package domain

import "time"

// EventKind identifies the kind of thankable contribution.
type EventKind string

const (
	EventKindEdit   EventKind = "rev"
	EventKindAction EventKind = "log"
)

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventKindEdit, EventKindAction:
		return true
	}
	return false
}

// Visibility restriction bits shared by revisions and log entries.
const (
	DeletedText       = 1
	DeletedComment    = 2
	DeletedUser       = 4
	DeletedRestricted = 8
)

// InvalidRevisionID is the sentinel id clients send for "no such edit".
const InvalidRevisionID int64 = 1

// Page is an addressable unit of content.
type Page struct {
	ID        int64
	Namespace int
	Title     string
}

// TargetRef is a page resolved for display: human-readable text and URL.
type TargetRef struct {
	PageID      int64
	Namespace   int
	Title       string
	DisplayText string
	URL         string
}

// Revision is a single edit as stored by the content store.
type Revision struct {
	ID         int64
	PageID     int64
	ParentID   int64
	AuthorID   int64 // 0 for anonymous edits
	AuthorName string
	Deleted    int
	CreatedAt  time.Time
	Page       *Page // nil when the page no longer exists
}

// IsDeleted reports whether any of the given visibility bits are set.
func (r *Revision) IsDeleted(field int) bool {
	return r.Deleted&field == field
}

// HasAuthor reports whether author information is visible.
func (r *Revision) HasAuthor() bool {
	return r.AuthorName != "" && !r.IsDeleted(DeletedUser)
}

// LogEntry is a recorded administrative action.
type LogEntry struct {
	ID              int64
	Type            string
	Action          string
	PerformerID     int64
	PerformerName   string
	AssociatedRevID int64 // 0 when the action has no associated edit
	Deleted         int
	CreatedAt       time.Time
	Page            *Page
}

// IsRestricted reports whether any part of the entry is hidden.
func (e *LogEntry) IsRestricted() bool {
	return e.Deleted != 0
}

// ContributionEvent is a resolved thank reference. It is derived per
// request and never persisted.
type ContributionEvent struct {
	Kind       EventKind
	ID         int64
	Recipient  Identity
	Target     TargetRef
	IsCreation bool
}

// Key returns the idempotency key of the event.
func (e ContributionEvent) Key() ThanksKey {
	return ThanksKey{Kind: e.Kind, ID: e.ID}
}
