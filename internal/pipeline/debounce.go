package pipeline

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single deferred run:
// each Trigger cancels the pending timer, if any, and schedules a fresh
// one, so the function fires once the trigger stream has been quiet for
// the full delay.  The pending timer is explicit state owned here, not
// hidden in a closure.
type Debouncer struct {
	Delay time.Duration

	mu      sync.Mutex
	pending *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay}
}

// Trigger schedules fn to run after the quiet period, replacing any
// previously scheduled run.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.Delay, fn)
}

// Stop cancels a pending run, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
