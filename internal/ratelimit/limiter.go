// Package ratelimit implements an in-process fixed-window request limiter.
//
// State is a per-key counter table shared by all in-flight requests; entries
// expire lazily when their window elapses, so the table stays bounded by the
// number of distinct client keys seen within one window.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultMaxKeys caps the bucket table to protect against key-cardinality
// abuse (e.g. spoofed forwarding headers).
const DefaultMaxKeys = 10000

// Decision is the outcome of a single admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Config tunes a Limiter. The zero value is usable.
type Config struct {
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time

	// MaxKeys bounds the bucket table. Defaults to DefaultMaxKeys.
	MaxKeys int
}

// Limiter tracks request counts per client key within fixed windows.
// Safe for concurrent use: counting for a given key is atomic under the
// table lock.
type Limiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*bucket
	maxKeys int
}

type bucket struct {
	count     int
	windowEnd time.Time
}

// New constructs a Limiter from cfg.
func New(cfg Config) *Limiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = DefaultMaxKeys
	}
	return &Limiter{
		now:     cfg.Now,
		buckets: make(map[string]*bucket),
		maxKeys: cfg.MaxKeys,
	}
}

// Allow records one request for key and reports whether it fits within
// limit requests per window. The first request after a window elapses
// starts a fresh window with count 1.
//
// A non-positive limit disables limiting for the call.
func (l *Limiter) Allow(key string, limit int, window time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if ok && !now.Before(b.windowEnd) {
		delete(l.buckets, key)
		ok = false
	}
	if !ok {
		if len(l.buckets) >= l.maxKeys {
			l.sweep(now)
		}
		if len(l.buckets) >= l.maxKeys {
			// table saturated even after sweeping: admit without tracking
			// rather than starving clients behind shared proxies
			return Decision{Allowed: true, Limit: limit, Remaining: 0, ResetAt: now.Add(window)}
		}
		b = &bucket{windowEnd: now.Add(window)}
		l.buckets[key] = b
	}

	if b.count < limit {
		b.count++
		return Decision{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - b.count,
			ResetAt:   b.windowEnd,
		}
	}

	return Decision{Allowed: false, Limit: limit, Remaining: 0, ResetAt: b.windowEnd}
}

// sweep drops every expired bucket. Caller must hold the lock.
func (l *Limiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if !now.Before(b.windowEnd) {
			delete(l.buckets, key)
		}
	}
}
