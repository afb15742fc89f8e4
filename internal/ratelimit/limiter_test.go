package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is an adjustable clock for window-expiry tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestLimiter_ExactBudgetWithinWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := New(Config{Now: clock.now})

	for i := 1; i <= 10; i++ {
		d := l.Allow("client-a", 10, time.Minute)
		require.Truef(t, d.Allowed, "request %d should be admitted", i)
		assert.Equal(t, 10-i, d.Remaining)
	}

	d := l.Allow("client-a", 10, time.Minute)
	assert.False(t, d.Allowed, "11th request must be rejected")
	assert.Zero(t, d.Remaining)
}

func TestLimiter_WindowReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := New(Config{Now: clock.now})

	for i := 0; i < 10; i++ {
		l.Allow("client-a", 10, time.Minute)
	}
	assert.False(t, l.Allow("client-a", 10, time.Minute).Allowed)

	clock.advance(time.Minute + time.Second)

	d := l.Allow("client-a", 10, time.Minute)
	assert.True(t, d.Allowed, "counter must reset after the window elapses")
	assert.Equal(t, 9, d.Remaining)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(Config{})

	for i := 0; i < 5; i++ {
		l.Allow("client-a", 5, time.Minute)
	}
	assert.False(t, l.Allow("client-a", 5, time.Minute).Allowed)
	assert.True(t, l.Allow("client-b", 5, time.Minute).Allowed)
}

func TestLimiter_NonPositiveLimitDisables(t *testing.T) {
	l := New(Config{})

	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("client-a", 0, time.Minute).Allowed)
	}
}

func TestLimiter_SweepReclaimsExpiredBuckets(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := New(Config{Now: clock.now, MaxKeys: 3})

	l.Allow("a", 10, time.Minute)
	l.Allow("b", 10, time.Minute)
	l.Allow("c", 10, time.Minute)

	clock.advance(2 * time.Minute)

	// table is full but every bucket has expired; the sweep makes room
	d := l.Allow("d", 10, time.Minute)
	assert.True(t, d.Allowed)
	assert.Equal(t, 9, d.Remaining)
}

func TestLimiter_SaturatedTableFailsOpen(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	l := New(Config{Now: clock.now, MaxKeys: 2})

	l.Allow("a", 10, time.Minute)
	l.Allow("b", 10, time.Minute)

	d := l.Allow("c", 10, time.Minute)
	assert.True(t, d.Allowed, "untrackable keys are admitted, not starved")
}

func TestLimiter_ConcurrentSameKey(t *testing.T) {
	l := New(Config{})

	const workers = 50
	var admitted int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared", 10, time.Minute).Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 10, admitted, "exactly limit requests admitted under concurrency")
}

func TestLimiter_ConcurrentDistinctKeys(t *testing.T) {
	l := New(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("client-%d", n)
			for j := 0; j < 5; j++ {
				assert.True(t, l.Allow(key, 5, time.Minute).Allowed)
			}
			assert.False(t, l.Allow(key, 5, time.Minute).Allowed)
		}(i)
	}
	wg.Wait()
}
