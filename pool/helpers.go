package pool

import (
	"errors"
	"time"
)

var (
	ErrAlreadyStarted  = errors.New("pool already started")
	ErrNotStarted      = errors.New("pool not started")
	ErrShutdown        = errors.New("pool shut down")
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
)

// waitUntil blocks until either the done channel is closed or the timeout is reached.
// It is used during graceful shutdown to wait for workers to complete their tasks.
func waitUntil(d <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-d
		return nil
	}

	select {
	case <-d:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}
