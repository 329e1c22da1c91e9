package hooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

type revisionStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Revision, error)
}

type logEntryStore interface {
	GetByID(ctx context.Context, id int64) (*domain.LogEntry, error)
}

type identityStore interface {
	GetByID(ctx context.Context, id int64) (domain.Identity, error)
}

// ViewLoader builds views from stored revisions, log entries and users.
type ViewLoader struct {
	revisions  revisionStore
	logEntries logEntryStore
	users      identityStore
}

// NewViewLoader creates a ViewLoader.
func NewViewLoader(revisions revisionStore, logEntries logEntryStore, users identityStore) *ViewLoader {
	return &ViewLoader{revisions: revisions, logEntries: logEntries, users: users}
}

// HistoryView loads revision revID and, when prevID is non-zero, the
// revision it is compared against.
func (v *ViewLoader) HistoryView(ctx context.Context, viewer domain.Identity, session domain.SessionFlags, revID, prevID int64) (HistoryView, error) {
	rev, err := v.revisions.GetByID(ctx, revID)
	if err != nil {
		return HistoryView{}, fmt.Errorf("get revision: %w", err)
	}

	view := HistoryView{Viewer: viewer, Session: session, Revision: rev}
	if prevID != 0 {
		prev, err := v.revisions.GetByID(ctx, prevID)
		if err != nil {
			return HistoryView{}, fmt.Errorf("get previous revision: %w", err)
		}
		view.Previous = prev
	}

	view.Recipient, err = v.identity(ctx, rev.AuthorID, rev.AuthorName)
	if err != nil {
		return HistoryView{}, err
	}
	return view, nil
}

// LogLineView loads log entry logID and its performer.
func (v *ViewLoader) LogLineView(ctx context.Context, viewer domain.Identity, session domain.SessionFlags, logID int64) (LogLineView, error) {
	entry, err := v.logEntries.GetByID(ctx, logID)
	if err != nil {
		return LogLineView{}, fmt.Errorf("get log entry: %w", err)
	}

	recipient, err := v.identity(ctx, entry.PerformerID, entry.PerformerName)
	if err != nil {
		return LogLineView{}, err
	}
	return LogLineView{Viewer: viewer, Session: session, Entry: entry, Recipient: recipient}, nil
}

// identity returns the user behind id. Unknown and anonymous authors come
// back as anonymous identities, which never receive thanks.
func (v *ViewLoader) identity(ctx context.Context, id int64, name string) (domain.Identity, error) {
	if id <= 0 {
		return domain.Anonymous(name), nil
	}
	user, err := v.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Anonymous(name), nil
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
