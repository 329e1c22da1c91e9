// Package limiter throttles actions per account and category with token
// buckets from golang.org/x/time/rate.
package limiter

import (
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long an unused bucket is kept.
const idleAfter = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// Limiter allows up to perMinute actions per (actor, category) with a burst
// of the same size.
type Limiter struct {
	buckets   sync.Map // map[string]*bucket
	perMinute int
	stop      chan struct{}
	stopOnce  sync.Once
}

// New creates a limiter with background cleanup.
// Call Stop() on shutdown.
func New(perMinute int, cleanupInterval time.Duration) *Limiter {
	l := &Limiter{
		perMinute: max(perMinute, 1),
		stop:      make(chan struct{}),
	}
	go l.cleanup(cleanupInterval)
	return l
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Allow reports whether actorID may perform one more action of category
// now, consuming a token if so.
func (l *Limiter) Allow(actorID int64, category string) bool {
	b := l.bucket(category + ":" + strconv.FormatInt(actorID, 10))

	b.mu.Lock()
	b.lastSeen = time.Now()
	b.mu.Unlock()

	return b.limiter.Allow()
}

func (l *Limiter) bucket(key string) *bucket {
	if val, ok := l.buckets.Load(key); ok {
		return val.(*bucket)
	}
	every := rate.Every(time.Minute / time.Duration(l.perMinute))
	val, _ := l.buckets.LoadOrStore(key, &bucket{
		limiter:  rate.NewLimiter(every, l.perMinute),
		lastSeen: time.Now(),
	})
	return val.(*bucket)
}

func (l *Limiter) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := time.Now()
			l.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastSeen)
				b.mu.Unlock()
				if idle > idleAfter {
					l.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
