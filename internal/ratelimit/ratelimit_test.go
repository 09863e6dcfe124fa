package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter() (*Limiter, *time.Time) {
	l := New(2, time.Second, 30*time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestBurstTriggersBlock(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 2; i++ {
		if v := l.Check(1); !v.Allowed {
			t.Fatalf("message %d: expected allowed", i+1)
		}
	}
	v := l.Check(1)
	if v.Allowed {
		t.Fatalf("3rd message in window: expected rejection")
	}
	if !v.Burst {
		t.Fatalf("expected Burst on the triggering check")
	}
	if v.RetryAfter != 30*time.Second {
		t.Fatalf("expected 30s block, got %v", v.RetryAfter)
	}
}

func TestBlockedCheckReportsRemaining(t *testing.T) {
	l, now := newTestLimiter()

	l.Check(1)
	l.Check(1)
	l.Check(1) // triggers block

	*now = now.Add(10 * time.Second)
	v := l.Check(1)
	if v.Allowed {
		t.Fatalf("expected rejection while blocked")
	}
	if v.Burst {
		t.Fatalf("existing block must not report Burst")
	}
	if v.RetryAfter != 20*time.Second {
		t.Fatalf("expected 20s remaining, got %v", v.RetryAfter)
	}
}

func TestAllowedAgainAfterBlockExpires(t *testing.T) {
	l, now := newTestLimiter()

	l.Check(1)
	l.Check(1)
	l.Check(1)

	*now = now.Add(31 * time.Second)
	if v := l.Check(1); !v.Allowed {
		t.Fatalf("expected allowed after block expiry, got %+v", v)
	}
}

func TestWindowExpiryResetsCount(t *testing.T) {
	l, now := newTestLimiter()

	l.Check(1)
	l.Check(1)

	*now = now.Add(1100 * time.Millisecond)
	if v := l.Check(1); !v.Allowed {
		t.Fatalf("expected allowed in a fresh window, got %+v", v)
	}
}

func TestUsersAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()

	l.Check(1)
	l.Check(1)
	l.Check(1) // user 1 blocked

	if v := l.Check(2); !v.Allowed {
		t.Fatalf("user 2 must not be affected by user 1's block")
	}
}
