package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces dataset reloads so a file rewritten in several bursts is
// read once per gap rather than once per change.
type throttle struct {
	gap time.Duration

	mu       sync.Mutex
	lastLoad time.Time
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: max(gap, 0)}
}

// wait blocks until gap has passed since the previous reload, then records a
// new one. It reports false when ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.gap == 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	delay := time.Until(t.lastLoad.Add(t.gap))
	t.mu.Unlock()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.mu.Lock()
	t.lastLoad = time.Now()
	t.mu.Unlock()
	return ctx.Err() == nil
}
