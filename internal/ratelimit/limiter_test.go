package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdmitCountsDownRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l := New(3, time.Minute, func() time.Time { return now })

	for _, want := range []int{2, 1, 0} {
		allowed, remaining := l.Admit("10.0.0.1")
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining := l.Admit("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestAdmitEvictsExpiredEntries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l := New(2, time.Minute, func() time.Time { return now })

	l.Admit("client")
	l.Admit("client")
	allowed, _ := l.Admit("client")
	assert.False(t, allowed)

	now = now.Add(61 * time.Second)
	allowed, remaining := l.Admit("client")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
}

func TestAdmitDeniedRequestsNotRecorded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l := New(1, time.Minute, func() time.Time { return now })

	l.Admit("client")
	for i := 0; i < 5; i++ {
		allowed, _ := l.Admit("client")
		assert.False(t, allowed)
	}

	now = now.Add(2 * time.Minute)
	allowed, _ := l.Admit("client")
	assert.True(t, allowed)
}

func TestAdmitIsolatesIdentities(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l := New(1, time.Minute, func() time.Time { return now })

	l.Admit("a")
	allowed, _ := l.Admit("a")
	assert.False(t, allowed)

	allowed, remaining := l.Admit("b")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestAdmitConcurrentSameIdentity(t *testing.T) {
	l := New(50, time.Minute, nil)

	var wg sync.WaitGroup
	admitted := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := l.Admit("shared")
			admitted <- allowed
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for allowed := range admitted {
		if allowed {
			count++
		}
	}
	assert.Equal(t, 50, count)
}

func TestAccessors(t *testing.T) {
	l := New(100, time.Hour, nil)
	assert.Equal(t, 100, l.Max())
	assert.Equal(t, time.Hour, l.Window())
}
