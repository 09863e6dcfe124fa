// Package ratelimit implements a per-user fixed window limiter with
// temporary blocks for users who exceed the burst limit.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

// Verdict is the outcome of a single rate-limit check.
// RetryAfter is meaningful only when Allowed is false. Burst marks the
// check that triggered a fresh block, as opposed to a check rejected by
// an already running block.
type Verdict struct {
	Allowed    bool
	RetryAfter time.Duration
	Burst      bool
}

type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	block   time.Duration
	entries map[int64]*entry
	now     func() time.Time
}

// New creates a limiter allowing at most limit messages per window.
// Exceeding the limit blocks the user for the block duration.
func New(limit int, window, block time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		block:   block,
		entries: make(map[int64]*entry),
		now:     time.Now,
	}
}

// Check records one inbound message for userID and decides whether it
// may be processed. Checks made while the user is blocked do not
// consume a slot.
func (l *Limiter) Check(userID int64) Verdict {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[userID]
	if e == nil {
		e = &entry{windowStart: now}
		l.entries[userID] = e
	}

	if now.Before(e.blockedUntil) {
		return Verdict{RetryAfter: e.blockedUntil.Sub(now)}
	}

	if now.Sub(e.windowStart) > l.window {
		e.count = 0
		e.windowStart = now
	}

	e.count++
	if e.count > l.limit {
		e.blockedUntil = now.Add(l.block)
		return Verdict{RetryAfter: l.block, Burst: true}
	}
	return Verdict{Allowed: true}
}
