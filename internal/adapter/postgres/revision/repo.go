// Package revision reads edits and their pages from PostgreSQL.
package revision

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Wikia/thanksmetoo/internal/adapter/postgres"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Repo provides read access to revisions.
type Repo struct {
	db postgres.Querier
}

// New creates a new revision repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type revisionRow struct {
	ID            int64     `db:"id"`
	PageID        int64     `db:"page_id"`
	ParentID      int64     `db:"parent_id"`
	AuthorID      int64     `db:"author_id"`
	AuthorName    string    `db:"author_name"`
	Deleted       int       `db:"deleted"`
	CreatedAt     time.Time `db:"created_at"`
	PageNamespace *int      `db:"page_namespace"`
	PageTitle     *string   `db:"page_title"`
}

// GetByID returns the revision with its page. Page is nil when the page
// row no longer exists. Unknown ids return domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Revision, error) {
	query, args, err := postgres.Builder().
		Select(
			"r.id", "COALESCE(r.page_id, 0) AS page_id", "r.parent_id", "r.author_id",
			"r.author_name", "r.deleted", "r.created_at",
			"p.namespace AS page_namespace", "p.title AS page_title",
		).
		From("revisions r").
		LeftJoin("pages p ON p.id = r.page_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("revision get: build: %w", err)
	}

	var row revisionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("revision %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "revision", id)
	}

	rev := &domain.Revision{
		ID:         row.ID,
		PageID:     row.PageID,
		ParentID:   row.ParentID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Deleted:    row.Deleted,
		CreatedAt:  row.CreatedAt,
	}
	if row.PageTitle != nil {
		page := &domain.Page{ID: row.PageID, Title: *row.PageTitle}
		if row.PageNamespace != nil {
			page.Namespace = *row.PageNamespace
		}
		rev.Page = page
	}
	return rev, nil
}

// HasPredecessor reports whether an earlier revision exists on the same
// page, ordered by (created_at, id).
func (r *Repo) HasPredecessor(ctx context.Context, rev *domain.Revision) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From("revisions").
		Where(sq.Eq{"page_id": rev.PageID}).
		Where("(created_at, id) < (?, ?)", rev.CreatedAt, rev.ID).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("revision predecessor: build: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "revision", rev.ID)
	}
	return exists, nil
}
