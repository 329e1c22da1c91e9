// Package user implements the identity store using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Wikia/thanksmetoo/internal/adapter/postgres"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Repo provides account lookups, including active block state.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID                int64  `db:"id"`
	Name              string `db:"name"`
	IsBot             bool   `db:"is_bot"`
	IsBlocked         bool   `db:"is_blocked"`
	IsGloballyBlocked bool   `db:"is_globally_blocked"`
}

// activeBlock matches unexpired blocks of the outer users row u.
const activeBlock = "SELECT 1 FROM user_blocks b WHERE b.user_id = u.id AND (b.expires_at IS NULL OR b.expires_at > now())"

func selectUser() sq.SelectBuilder {
	return postgres.Builder().
		Select(
			"u.id", "u.name", "u.is_bot",
			"EXISTS("+activeBlock+" AND b.sitewide) AS is_blocked",
			"EXISTS("+activeBlock+" AND b.global) AS is_globally_blocked",
		).
		From("users u")
}

// GetByID returns the identity with the given account id.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Identity, error) {
	return r.get(ctx, selectUser().Where(sq.Eq{"u.id": id}), id)
}

// GetByName returns the identity with the given account name.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Identity, error) {
	return r.get(ctx, selectUser().Where(sq.Eq{"u.name": name}), name)
}

func (r *Repo) get(ctx context.Context, b sq.SelectBuilder, key any) (domain.Identity, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("user get: build: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Identity{}, fmt.Errorf("user %v: %w", key, domain.ErrNotFound)
		}
		return domain.Identity{}, postgres.MapError(err, "user", key)
	}

	return domain.Identity{
		ID:                row.ID,
		Name:              row.Name,
		IsBot:             row.IsBot,
		IsBlocked:         row.IsBlocked,
		IsGloballyBlocked: row.IsGloballyBlocked,
	}, nil
}
