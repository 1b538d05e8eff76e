package history

import (
	"sync"
	"time"
)

// DefaultSettle is the quiet window after the last edit before a snapshot is
// committed.
const DefaultSettle = 500 * time.Millisecond

// Debouncer coalesces rapid edits into one callback: each Trigger cancels
// any pending timer and starts a new one, so only the final state within a
// quiet window settles (last-write-wins, not a queue). The callback fires on
// a timer goroutine; callers hand it something safe to invoke from there.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultSettle
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules the callback after the settle window, cancelling any
// previously pending run.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = true
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	fn := d.fn
	d.mu.Unlock()
	fn()
}

// Flush runs a pending callback immediately, for save-before-navigate style
// flows.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
	fn := d.fn
	d.mu.Unlock()
	fn()
}

// Stop cancels any pending run. Must be called on editor teardown so no
// stray snapshot lands after unmount.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}
