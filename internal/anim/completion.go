package anim

import (
	"context"
	"sync"
	"time"
)

// Completion is signalled once when a run finishes. It never fails.
type Completion struct {
	once  sync.Once
	done  chan struct{}
	mu    sync.Mutex
	at    time.Time
	calls int
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Done returns a channel closed when the run has finished.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Wait blocks until the run finishes or ctx ends. A cancelled ctx only stops
// the wait; the run itself keeps going until its duration elapses.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resolved reports whether the run has finished.
func (c *Completion) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// FinishedAt returns the frame time at which the run finished.
func (c *Completion) FinishedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

// Resolutions counts how many times the signal actually fired (0 or 1).
func (c *Completion) Resolutions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *Completion) resolve(at time.Time) {
	c.once.Do(func() {
		c.mu.Lock()
		c.at = at
		c.calls++
		c.mu.Unlock()
		close(c.done)
	})
}
