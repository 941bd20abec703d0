package postal

import (
	"sync"
	"time"
)

// DefaultDebounce matches the intake form's pause-before-lookup interval.
const DefaultDebounce = 400 * time.Millisecond

// Debouncer defers a function until triggers have paused for the configured
// delay. Each Trigger cancels the previously scheduled call outright, so only
// the most recent one can ever fire. The zero value is not usable; create
// instances with NewDebouncer.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a Debouncer. A non-positive delay falls back to
// DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, cancelling any pending call.
// fn runs on a timer goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel stops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
