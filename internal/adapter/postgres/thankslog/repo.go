// Package thankslog implements the durable thanks audit store using
// PostgreSQL. Records are append-only and unique per (actor, thanks key).
package thankslog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Wikia/thanksmetoo/internal/adapter/postgres"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

const table = "thanks_log"

// Repo provides thanks log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new thanks log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Exists reports whether actorID has already thanked key.
func (r *Repo) Exists(ctx context.Context, actorID int64, key string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"actor_id": actorID, "thanks_key": key}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("thanks_log exists: build: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "thanks_log", key)
	}
	return exists, nil
}

// Append writes rec unless a record for (ActorID, ThanksKey) already exists.
// It reports whether this call inserted the row.
func (r *Repo) Append(ctx context.Context, rec domain.DedupRecord) (bool, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "actor_id", "recipient_id", "thanks_key", "source", "created_at").
		Values(rec.ID, rec.ActorID, rec.RecipientID, rec.ThanksKey, rec.Source, rec.RecordedAt).
		Suffix("ON CONFLICT (actor_id, thanks_key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("thanks_log append: build: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "thanks_log", rec.ThanksKey)
	}
	return tag.RowsAffected() == 1, nil
}

type logRow struct {
	ID            uuid.UUID `db:"id"`
	ActorID       int64     `db:"actor_id"`
	RecipientID   int64     `db:"recipient_id"`
	ThanksKey     string    `db:"thanks_key"`
	Source        string    `db:"source"`
	CreatedAt     time.Time `db:"created_at"`
	ActorName     string    `db:"actor_name"`
	RecipientName string    `db:"recipient_name"`
}

// List returns records matching filter, newest first, with actor and
// recipient names resolved.
func (r *Repo) List(ctx context.Context, filter domain.ThanksLogFilter) ([]domain.ThanksLogEntry, error) {
	b := postgres.Builder().
		Select(
			"t.id", "t.actor_id", "t.recipient_id", "t.thanks_key", "t.source", "t.created_at",
			"COALESCE(a.name, '') AS actor_name",
			"COALESCE(rc.name, '') AS recipient_name",
		).
		From(table+" t").
		LeftJoin("users a ON a.id = t.actor_id").
		LeftJoin("users rc ON rc.id = t.recipient_id").
		OrderBy("t.created_at DESC", "t.id")

	if filter.ActorID != nil {
		b = b.Where(sq.Eq{"t.actor_id": *filter.ActorID})
	}
	if filter.RecipientID != nil {
		b = b.Where(sq.Eq{"t.recipient_id": *filter.RecipientID})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("thanks_log list: build: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "thanks_log", "list")
	}

	entries := make([]domain.ThanksLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.ThanksLogEntry{
			DedupRecord: domain.DedupRecord{
				ID:          row.ID,
				ActorID:     row.ActorID,
				RecipientID: row.RecipientID,
				ThanksKey:   row.ThanksKey,
				Source:      row.Source,
				RecordedAt:  row.CreatedAt,
			},
			ActorName:     row.ActorName,
			RecipientName: row.RecipientName,
		})
	}
	return entries, nil
}
