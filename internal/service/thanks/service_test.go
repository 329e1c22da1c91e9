package thanks

//go:generate moq -out identity_store_mock_test.go -pkg thanks . identityStore
//go:generate moq -out rate_limiter_mock_test.go -pkg thanks . rateLimiter
//go:generate moq -out revision_store_mock_test.go -pkg thanks . revisionStore
//go:generate moq -out log_entry_store_mock_test.go -pkg thanks . logEntryStore
//go:generate moq -out thanks_log_mock_test.go -pkg thanks . thanksLog
//go:generate moq -out notifier_mock_test.go -pkg thanks . notifier
//go:generate moq -out linker_mock_test.go -pkg thanks . linker
//go:generate moq -out tx_manager_mock_test.go -pkg thanks . txManager

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

var (
	alice = domain.Identity{ID: 10, Name: "Alice"}
	bob   = domain.Identity{ID: 20, Name: "Bob"}
	carol = domain.Identity{ID: 30, Name: "Carol"}
	robot = domain.Identity{ID: 40, Name: "HelperBot", IsBot: true}

	mainPage = domain.Page{ID: 5, Namespace: 0, Title: "Main_Page"}
	t0       = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

// memSession is an in-memory session flag set.
type memSession struct {
	mu    sync.Mutex
	flags map[string]bool
}

func newMemSession(keys ...string) *memSession {
	s := &memSession{flags: map[string]bool{}}
	for _, k := range keys {
		s.flags[k] = true
	}
	return s
}

func (s *memSession) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *memSession) Set(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = true
}

// memThanksLog backs thanksLogMock with a map keyed by actor and key.
type memThanksLog struct {
	mu      sync.Mutex
	records map[string]domain.DedupRecord
}

func (m *memThanksLog) id(actorID int64, key string) string {
	return fmt.Sprintf("%d|%s", actorID, key)
}

func (m *memThanksLog) mock() *thanksLogMock {
	m.records = map[string]domain.DedupRecord{}
	return &thanksLogMock{
		ExistsFunc: func(ctx context.Context, actorID int64, key string) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			_, ok := m.records[m.id(actorID, key)]
			return ok, nil
		},
		AppendFunc: func(ctx context.Context, rec domain.DedupRecord) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			id := m.id(rec.ActorID, rec.ThanksKey)
			if _, ok := m.records[id]; ok {
				return false, nil
			}
			m.records[id] = rec
			return true, nil
		},
		ListFunc: func(ctx context.Context, filter domain.ThanksLogFilter) ([]domain.ThanksLogEntry, error) {
			return nil, nil
		},
	}
}

// fixture holds the mocks behind a Service under test. Defaults describe a
// wiki where Bob authored revision 456 on Main_Page (not a creation) and
// performed patrol action 789.
type fixture struct {
	users      *identityStoreMock
	limiter    *rateLimiterMock
	revisions  *revisionStoreMock
	logEntries *logEntryStoreMock
	store      *memThanksLog
	thanksLog  *thanksLogMock
	notifier   *notifierMock
	links      *linkerMock
	tx         *txManagerMock
	cfg        config.ThanksConfig

	identities map[int64]domain.Identity
	revs       map[int64]*domain.Revision
	entries    map[int64]*domain.LogEntry
	hasPrev    bool

	mu   sync.Mutex
	sent []domain.Notification
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		cfg: config.ThanksConfig{
			LogTypes:           []string{"patrol", "move"},
			RateLimitPerMinute: 10,
		},
		identities: map[int64]domain.Identity{
			alice.ID: alice, bob.ID: bob, carol.ID: carol, robot.ID: robot,
		},
		revs: map[int64]*domain.Revision{
			456: {ID: 456, PageID: mainPage.ID, ParentID: 455, AuthorID: bob.ID, AuthorName: bob.Name, CreatedAt: t0, Page: &mainPage},
		},
		entries: map[int64]*domain.LogEntry{
			789: {ID: 789, Type: "patrol", Action: "patrol", PerformerID: bob.ID, PerformerName: bob.Name, CreatedAt: t0, Page: &mainPage},
		},
		hasPrev: true,
		store:   &memThanksLog{},
	}

	f.users = &identityStoreMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Identity, error) {
			if u, ok := f.identities[id]; ok {
				return u, nil
			}
			return domain.Identity{}, domain.ErrNotFound
		},
		GetByNameFunc: func(ctx context.Context, name string) (domain.Identity, error) {
			for _, u := range f.identities {
				if u.Name == name {
					return u, nil
				}
			}
			return domain.Identity{}, domain.ErrNotFound
		},
	}
	f.limiter = &rateLimiterMock{
		AllowFunc: func(actorID int64, category string) bool { return true },
	}
	f.revisions = &revisionStoreMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Revision, error) {
			if r, ok := f.revs[id]; ok {
				return r, nil
			}
			return nil, domain.ErrNotFound
		},
		HasPredecessorFunc: func(ctx context.Context, rev *domain.Revision) (bool, error) {
			return f.hasPrev, nil
		},
	}
	f.logEntries = &logEntryStoreMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.LogEntry, error) {
			if e, ok := f.entries[id]; ok {
				return e, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	f.thanksLog = f.store.mock()
	f.notifier = &notifierMock{
		NameFunc: func() string { return "test" },
		SendFunc: func(ctx context.Context, n domain.Notification) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.sent = append(f.sent, n)
			return nil
		},
	}
	f.links = &linkerMock{
		TargetRefFunc: func(page domain.Page) domain.TargetRef {
			return domain.TargetRef{
				PageID:      page.ID,
				Namespace:   page.Namespace,
				Title:       page.Title,
				DisplayText: strings.ReplaceAll(page.Title, "_", " "),
				URL:         "https://wiki.example/wiki/" + page.Title,
			}
		},
		ProfileURLFunc: func(name string) string {
			return "https://wiki.example/wiki/UserProfile:" + name
		},
	}
	f.tx = defaultTxMock()
	return f
}

func (f *fixture) service() *Service {
	svc := NewService(
		slog.Default(),
		f.cfg,
		f.users,
		f.limiter,
		f.revisions,
		f.logEntries,
		f.thanksLog,
		f.notifier,
		f.links,
		f.tx,
	)
	svc.now = func() time.Time { return t0 }
	return svc
}

func (f *fixture) notifications() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Notification(nil), f.sent...)
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func requestAs(actor domain.Identity) Request {
	return Request{Actor: actor, Session: newMemSession()}
}
