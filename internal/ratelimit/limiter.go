package ratelimit

import (
	"sync"
	"time"
)

// Clock supplies the current time. Tests inject a fake to simulate the
// window advancing.
type Clock func() time.Time

// Limiter is a sliding-window rate limiter keyed by caller identity. Each
// identity owns a time-ordered slice of admitted-request timestamps;
// entries older than the window are evicted lazily on the next access for
// that identity, so inactive identities stop growing.
type Limiter struct {
	max    int
	window time.Duration
	now    Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	mu    sync.Mutex
	times []time.Time
}

// New creates a limiter admitting max requests per window. A nil clock
// falls back to time.Now.
func New(max int, window time.Duration, clock Clock) *Limiter {
	if clock == nil {
		clock = time.Now
	}
	return &Limiter{
		max:     max,
		window:  window,
		now:     clock,
		buckets: make(map[string]*bucket),
	}
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Max returns the configured request ceiling per window.
func (l *Limiter) Max() int { return l.max }

// Admit decides whether a request from identity is allowed right now and
// returns the remaining budget in the current window. Denied requests are
// not recorded. Concurrent calls for the same identity serialize on the
// identity's bucket; distinct identities do not contend.
func (l *Limiter) Admit(identity string) (allowed bool, remaining int) {
	b := l.bucket(identity)

	b.mu.Lock()
	defer b.mu.Unlock()

	windowStart := l.now().Add(-l.window)

	// Insertion order equals chronological order, so eviction only ever
	// trims the front.
	i := 0
	for i < len(b.times) && b.times[i].Before(windowStart) {
		i++
	}
	if i > 0 {
		b.times = append(b.times[:0], b.times[i:]...)
	}

	if len(b.times) >= l.max {
		return false, 0
	}

	b.times = append(b.times, l.now())
	remaining = l.max - len(b.times)
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining
}

func (l *Limiter) bucket(identity string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{}
		l.buckets[identity] = b
	}
	return b
}
