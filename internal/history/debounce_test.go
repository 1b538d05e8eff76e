package history

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitForCount(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d callbacks, got %d", want, counter.Load())
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { fired.Add(1) })
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}
	waitForCount(t, &fired, 1)

	// The window must re-arm for the next burst.
	d.Trigger()
	waitForCount(t, &fired, 2)
}

func TestDebouncerFlushRunsPendingNow(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(time.Hour, func() { fired.Add(1) })
	defer d.Stop()

	d.Trigger()
	d.Flush()
	if fired.Load() != 1 {
		t.Fatalf("flush should run the pending callback, got %d", fired.Load())
	}

	// Nothing pending: flush is a no-op.
	d.Flush()
	if fired.Load() != 1 {
		t.Fatalf("flush without pending work must not fire, got %d", fired.Load())
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { fired.Add(1) })

	d.Trigger()
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("stop must cancel the pending callback, got %d", fired.Load())
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func() {})
	defer d.Stop()
	if d.delay != DefaultSettle {
		t.Fatalf("zero delay should fall back to the default settle window")
	}
}
