// Package thanks implements the thank dispatch pipeline: reference
// resolution, authorization, duplicate detection, dispatch and session
// marking.
package thanks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

// RateLimitCategory is the limiter bucket charged for every thank attempt.
const RateLimitCategory = "thanks-notification"

type identityStore interface {
	GetByID(ctx context.Context, id int64) (domain.Identity, error)
	GetByName(ctx context.Context, name string) (domain.Identity, error)
}

type rateLimiter interface {
	Allow(actorID int64, category string) bool
}

type revisionStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Revision, error)
	HasPredecessor(ctx context.Context, rev *domain.Revision) (bool, error)
}

type logEntryStore interface {
	GetByID(ctx context.Context, id int64) (*domain.LogEntry, error)
}

type thanksLog interface {
	Exists(ctx context.Context, actorID int64, key string) (bool, error)
	Append(ctx context.Context, rec domain.DedupRecord) (bool, error)
	List(ctx context.Context, filter domain.ThanksLogFilter) ([]domain.ThanksLogEntry, error)
}

type notifier interface {
	Name() string
	Send(ctx context.Context, n domain.Notification) error
}

type linker interface {
	TargetRef(page domain.Page) domain.TargetRef
	ProfileURL(name string) string
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs thank requests through the dispatch pipeline.
type Service struct {
	users      identityStore
	limiter    rateLimiter
	revisions  revisionStore
	logEntries logEntryStore
	thanksLog  thanksLog
	notifier   notifier
	links      linker
	tx         txManager
	cfg        config.ThanksConfig
	log        *slog.Logger

	inflight singleflight.Group
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewService creates a new thanks service. cfg is expected to have passed
// validation so that LogTypes is populated.
func NewService(
	log *slog.Logger,
	cfg config.ThanksConfig,
	users identityStore,
	limiter rateLimiter,
	revisions revisionStore,
	logEntries logEntryStore,
	thanksLog thanksLog,
	notifier notifier,
	links linker,
	tx txManager,
) *Service {
	return &Service{
		users:      users,
		limiter:    limiter,
		revisions:  revisions,
		logEntries: logEntries,
		thanksLog:  thanksLog,
		notifier:   notifier,
		links:      links,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "thanks"),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.New,
	}
}

// Request carries the acting identity and its session flags. Transport
// builds one per incoming call.
type Request struct {
	Actor   domain.Identity
	Session domain.SessionFlags
}

func (r Request) session() domain.SessionFlags {
	if r.Session == nil {
		return domain.NopSessionFlags{}
	}
	return r.Session
}

// LoadActor returns the identity for an authenticated actor id. Zero, or an
// id whose account no longer exists, yields an anonymous identity named
// fallbackName (usually the client address).
func (s *Service) LoadActor(ctx context.Context, actorID int64, fallbackName string) (domain.Identity, error) {
	if actorID <= 0 {
		return domain.Anonymous(fallbackName), nil
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Anonymous(fallbackName), nil
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("load actor: %w", err)
	}
	return actor, nil
}
