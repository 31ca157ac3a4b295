package ratelimit

import (
	"fmt"
	"sync"
	"time"

	apperrors "testtrack-backend/internal/errors"
)

// window is one fixed-window counter for a single key
type window struct {
	count   int
	resetAt time.Time
}

// Limiter is an in-process fixed-window request throttle. Counters are keyed
// by "namespace:clientKey" and reset when their window elapses. A janitor
// goroutine evicts expired entries to bound memory growth.
//
// Being in-memory and per-process, the policy is approximate under horizontal
// scaling; swap the Store interface for a distributed counter if that matters.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	enabled bool
	now     func() time.Time
	stop    chan struct{}
}

// Store is the request-throttle contract handlers depend on, so the
// in-memory limiter can be replaced without touching call sites.
type Store interface {
	Check(namespace, clientKey string, max int, windowSeconds int) error
}

// Option configures a Limiter
type Option func(*Limiter)

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter and starts its janitor. A disabled limiter admits
// every request; development and test runs use that mode so automated tests
// never flake on the throttle.
func New(enabled bool, opts ...Option) *Limiter {
	l := &Limiter{
		windows: make(map[string]*window),
		enabled: enabled,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.janitor()
	return l
}

// Check admits or rejects one request for the given key. The first request in
// a window initializes the counter to 1; requests beyond max within the same
// window fail with a RateLimitError carrying the seconds until reset.
func (l *Limiter) Check(namespace, clientKey string, max int, windowSeconds int) error {
	if !l.enabled {
		return nil
	}

	key := fmt.Sprintf("%s:%s", namespace, clientKey)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) || now.Equal(w.resetAt) {
		l.windows[key] = &window{
			count:   1,
			resetAt: now.Add(time.Duration(windowSeconds) * time.Second),
		}
		return nil
	}

	w.count++
	if w.count > max {
		retry := int(w.resetAt.Sub(now).Seconds())
		if retry < 1 {
			retry = 1
		}
		return &apperrors.RateLimitError{RetryAfterSeconds: retry}
	}
	return nil
}

// Close stops the janitor goroutine
func (l *Limiter) Close() {
	close(l.stop)
}

// janitor periodically evicts windows whose deadline has passed
func (l *Limiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := l.now()
			l.mu.Lock()
			for key, w := range l.windows {
				if now.After(w.resetAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
