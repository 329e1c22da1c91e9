// Package logentry reads recorded administrative actions from PostgreSQL.
package logentry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Wikia/thanksmetoo/internal/adapter/postgres"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Repo provides read access to log entries.
type Repo struct {
	db postgres.Querier
}

// New creates a new log entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID              int64     `db:"id"`
	Type            string    `db:"type"`
	Action          string    `db:"action"`
	PerformerID     int64     `db:"performer_id"`
	PerformerName   string    `db:"performer_name"`
	AssociatedRevID int64     `db:"assoc_rev_id"`
	Deleted         int       `db:"deleted"`
	CreatedAt       time.Time `db:"created_at"`
	PageID          *int64    `db:"page_id"`
	PageNamespace   *int      `db:"page_namespace"`
	PageTitle       *string   `db:"page_title"`
}

// GetByID returns the log entry with its target page, if any.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.LogEntry, error) {
	query, args, err := postgres.Builder().
		Select(
			"l.id", "l.type", "l.action", "l.performer_id", "l.performer_name",
			"l.assoc_rev_id", "l.deleted", "l.created_at",
			"p.id AS page_id", "p.namespace AS page_namespace", "p.title AS page_title",
		).
		From("log_entries l").
		LeftJoin("pages p ON p.id = l.page_id").
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("log_entry get: build: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("log_entry %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "log_entry", id)
	}

	entry := &domain.LogEntry{
		ID:              row.ID,
		Type:            row.Type,
		Action:          row.Action,
		PerformerID:     row.PerformerID,
		PerformerName:   row.PerformerName,
		AssociatedRevID: row.AssociatedRevID,
		Deleted:         row.Deleted,
		CreatedAt:       row.CreatedAt,
	}
	if row.PageID != nil && row.PageTitle != nil {
		entry.Page = &domain.Page{ID: *row.PageID, Title: *row.PageTitle}
		if row.PageNamespace != nil {
			entry.Page.Namespace = *row.PageNamespace
		}
	}
	return entry, nil
}
