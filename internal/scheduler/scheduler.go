// Package scheduler provides the frame-scheduling primitive the animation
// loop reschedules itself through.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler requests a single future invocation of fn per call. Callbacks
// never overlap.
type Scheduler interface {
	RequestFrame(fn func())
}

// Manual runs queued callbacks only when Step is called. The ebiten host
// steps it from Update; tests step it by hand.
type Manual struct {
	pending []func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) RequestFrame(fn func()) {
	if fn != nil {
		m.pending = append(m.pending, fn)
	}
}

// Pending reports how many callbacks wait for the next Step.
func (m *Manual) Pending() int { return len(m.pending) }

// Step runs the callbacks queued before the call and returns how many ran.
// Callbacks requested during Step wait for the next one.
func (m *Manual) Step() int {
	batch := m.pending
	m.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Run steps n times.
func (m *Manual) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += m.Step()
	}
	return total
}

// Timer is the fallback when no host refresh signal exists: a fixed-rate
// ticker that runs at most one pending callback per tick on the goroutine
// calling Run.
type Timer struct {
	interval time.Duration

	mu   sync.Mutex
	next func()
}

// NewTimer ticks fps times per second; non-positive fps means 60.
func NewTimer(fps int) *Timer {
	if fps <= 0 {
		fps = 60
	}
	return &Timer{interval: time.Second / time.Duration(fps)}
}

func (t *Timer) Interval() time.Duration { return t.interval }

func (t *Timer) RequestFrame(fn func()) {
	t.mu.Lock()
	t.next = fn
	t.mu.Unlock()
}

// Run blocks until ctx is done and returns ctx.Err().
func (t *Timer) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.mu.Lock()
			fn := t.next
			t.next = nil
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}
