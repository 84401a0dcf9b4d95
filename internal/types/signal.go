package types

import (
	"sync"
	"sync/atomic"
)

// Signal is a one-shot completion signal. It starts pending and moves to
// signaled exactly once; it never returns to pending.
//
// The zero value is not usable, create one with NewSignal.
type Signal struct {
	done chan struct{}
	once sync.Once
	set  atomic.Bool
}

// NewSignal returns a pending Signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Set moves the signal to signaled and wakes every waiter.
// Calling Set more than once is a no-op.
func (s *Signal) Set() {
	s.once.Do(func() {
		s.set.Store(true)
		close(s.done)
	})
}

// Wait blocks until Set has been called. It returns immediately if the
// signal is already signaled.
func (s *Signal) Wait() {
	<-s.done
}

// IsSet reports whether the signal has been set.
func (s *Signal) IsSet() bool {
	return s.set.Load()
}

// Done returns a channel that is closed once the signal is set.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
