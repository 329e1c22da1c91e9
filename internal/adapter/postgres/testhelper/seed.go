package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an account and returns its identity.
func SeedUser(t *testing.T, pool *pgxpool.Pool, isBot bool) domain.Identity {
	t.Helper()

	u := domain.Identity{Name: "User-" + uniqueSuffix(), IsBot: isBot}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, is_bot) VALUES ($1, $2) RETURNING id`,
		u.Name, u.IsBot,
	).Scan(&u.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedBlock blocks userID. expiresAt nil means indefinite.
func SeedBlock(t *testing.T, pool *pgxpool.Pool, userID int64, global bool, expiresAt *time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_blocks (user_id, sitewide, global, expires_at) VALUES ($1, $2, $3, $4)`,
		userID, !global, global, expiresAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBlock: %v", err)
	}
}

// SeedPage creates a page in the given namespace.
func SeedPage(t *testing.T, pool *pgxpool.Pool, namespace int) domain.Page {
	t.Helper()

	p := domain.Page{Namespace: namespace, Title: "Page_" + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO pages (namespace, title) VALUES ($1, $2) RETURNING id`,
		p.Namespace, p.Title,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPage: %v", err)
	}
	return p
}

// SeedRevision creates an edit by author on page at the given time.
func SeedRevision(t *testing.T, pool *pgxpool.Pool, page domain.Page, author domain.Identity, at time.Time) domain.Revision {
	t.Helper()

	rev := domain.Revision{
		PageID:     page.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  at.UTC().Truncate(time.Microsecond),
		Page:       &page,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO revisions (page_id, author_id, author_name, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		rev.PageID, rev.AuthorID, rev.AuthorName, rev.CreatedAt,
	).Scan(&rev.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedRevision: %v", err)
	}
	return rev
}

// SeedLogEntry creates an action of logType performed by performer.
func SeedLogEntry(t *testing.T, pool *pgxpool.Pool, logType string, performer domain.Identity, page domain.Page, assocRevID int64) domain.LogEntry {
	t.Helper()

	e := domain.LogEntry{
		Type:            logType,
		Action:          logType,
		PerformerID:     performer.ID,
		PerformerName:   performer.Name,
		AssociatedRevID: assocRevID,
		Page:            &page,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO log_entries (type, action, performer_id, performer_name, page_id, assoc_rev_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.Type, e.Action, e.PerformerID, e.PerformerName, page.ID, e.AssociatedRevID,
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLogEntry: %v", err)
	}
	return e
}
