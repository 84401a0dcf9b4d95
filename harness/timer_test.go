package harness

import (
	"testing"
	"time"
)

// fakeClock is advanced by hand.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeTimer() (*Timer, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	t := NewTimer()
	t.now = clock.Now
	return t, clock
}

func TestTimer(t *testing.T) {
	t.Run("new timer reads zero", func(t *testing.T) {
		timer, clock := newFakeTimer()
		clock.Advance(time.Second)
		if got := timer.Elapsed(); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("reading grows while running", func(t *testing.T) {
		timer, clock := newFakeTimer()
		timer.Restart()
		clock.Advance(700 * time.Millisecond)

		if got := timer.Elapsed(); got != 700*time.Millisecond {
			t.Errorf("expected 700ms, got %v", got)
		}
	})

	t.Run("stop freezes the reading", func(t *testing.T) {
		timer, clock := newFakeTimer()
		timer.Restart()
		clock.Advance(1500 * time.Millisecond)
		timer.Stop()
		clock.Advance(time.Hour)
		timer.Stop()

		if got := timer.Elapsed(); got != 1500*time.Millisecond {
			t.Errorf("expected 1.5s, got %v", got)
		}
	})

	t.Run("restart resets to zero", func(t *testing.T) {
		timer, clock := newFakeTimer()
		timer.Restart()
		clock.Advance(5 * time.Second)
		timer.Stop()
		timer.Restart()
		clock.Advance(2 * time.Second)
		timer.Stop()

		if got := timer.Elapsed(); got != 2*time.Second {
			t.Errorf("expected 2s, got %v", got)
		}
	})

	t.Run("real clock", func(t *testing.T) {
		timer := NewTimer()
		timer.Restart()
		time.Sleep(20 * time.Millisecond)
		timer.Stop()
		if got := timer.Elapsed(); got < 20*time.Millisecond {
			t.Errorf("expected >= 20ms, got %v", got)
		}
	})
}
