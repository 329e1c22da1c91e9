// Package session keeps per-browser-session flags in memory.
package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

type entry struct {
	mu       sync.Mutex
	flags    map[string]struct{}
	lastSeen time.Time
}

// Store holds the flags of every live session. Sessions idle for longer
// than the TTL are dropped by a background janitor.
type Store struct {
	sessions sync.Map // map[string]*entry
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store with background cleanup.
// Call Stop() on shutdown.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		ttl:  ttl,
		now:  time.Now,
		stop: make(chan struct{}),
	}
	go s.cleanup(cleanupInterval)
	return s
}

// Stop terminates the background cleanup goroutine.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Flags returns the flags actorID owns in session sessionID. Actors sharing
// a browser session never see each other's flags. An empty session id
// yields flags that remember nothing.
func (s *Store) Flags(sessionID string, actorID int64) domain.SessionFlags {
	if sessionID == "" {
		return domain.NopSessionFlags{}
	}
	return &flags{store: s, id: scopeKey(sessionID, actorID)}
}

func scopeKey(sessionID string, actorID int64) string {
	return sessionID + "|" + strconv.FormatInt(actorID, 10)
}

func (s *Store) entry(id string) *entry {
	val, _ := s.sessions.LoadOrStore(id, &entry{flags: make(map[string]struct{})})
	return val.(*entry)
}

func (s *Store) has(id, key string) bool {
	val, ok := s.sessions.Load(id)
	if !ok {
		return false
	}
	e := val.(*entry)
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.expired(e) {
		return false
	}
	e.lastSeen = s.now()
	_, ok = e.flags[key]
	return ok
}

func (s *Store) set(id, key string) {
	e := s.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.expired(e) {
		clear(e.flags)
	}
	e.flags[key] = struct{}{}
	e.lastSeen = s.now()
}

func (s *Store) expired(e *entry) bool {
	return !e.lastSeen.IsZero() && s.now().Sub(e.lastSeen) > s.ttl
}

func (s *Store) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	s.sessions.Range(func(key, value any) bool {
		e := value.(*entry)
		e.mu.Lock()
		idle := s.expired(e)
		e.mu.Unlock()
		if idle {
			s.sessions.Delete(key)
		}
		return true
	})
}

// flags binds a Store to one actor within one session.
type flags struct {
	store *Store
	id    string
}

func (f *flags) Has(key string) bool { return f.store.has(f.id, key) }
func (f *flags) Set(key string)      { f.store.set(f.id, key) }
