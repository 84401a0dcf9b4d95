package harness

import "time"

// Timer measures wall-clock time between a restart and a stop, like a
// stopwatch. It is not safe for concurrent use.
type Timer struct {
	now     func() time.Time
	start   time.Time
	stopped time.Time
	running bool
}

// NewTimer returns a stopped timer reading zero.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// Restart resets the reading to zero and starts measuring.
func (t *Timer) Restart() {
	t.start = t.now()
	t.running = true
}

// Stop freezes the reading.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.stopped = t.now()
	t.running = false
}

// Elapsed returns the current reading.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.now().Sub(t.start)
	}
	return t.stopped.Sub(t.start)
}
