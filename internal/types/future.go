package types

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrPanic wraps a panic recovered while producing a future's value.
var ErrPanic = errors.New("task panic")

// result carries the value and error a task settled with.
type result[R any] struct {
	Value R
	Error error
}

// Future is a handle to a value produced asynchronously. It settles at most
// once; every Get after that returns the same value.
//
// Type parameters:
//   - R: The type of the value produced
type Future[R any] struct {
	signal *Signal
	once   sync.Once
	value  result[R]
}

// NewFuture returns an unsettled future. The producer settles it with Complete.
func NewFuture[R any]() *Future[R] {
	return &Future[R]{signal: NewSignal()}
}

// Complete settles the future. Only the first call has an effect.
func (f *Future[R]) Complete(value R, err error) {
	f.once.Do(func() {
		f.value = result[R]{Value: value, Error: err}
		f.signal.Set()
	})
}

// Get blocks until the future settles and returns its value and error.
func (f *Future[R]) Get() (R, error) {
	f.signal.Wait()
	return f.value.Value, f.value.Error
}

// Done returns a channel closed once the future settles.
func (f *Future[R]) Done() <-chan struct{} {
	return f.signal.Done()
}

// Go runs fn on a new goroutine and returns a future for its result.
// A panic in fn settles the future with an error wrapping ErrPanic.
func Go[R any](fn func() (R, error)) *Future[R] {
	f := NewFuture[R]()
	go func() {
		var (
			value R
			err   error
		)
		defer func() {
			if r := recover(); r != nil {
				err = recoveredError(r)
			}
			f.Complete(value, err)
		}()
		value, err = fn()
	}()
	return f
}

// WhenAll returns a future that settles once every input future has settled.
// Its error is the first non-nil error in argument order.
//
// Building the combinator does not wait; callers that need completion must
// Get the returned future.
func WhenAll[R any](futures ...*Future[R]) *Future[[]R] {
	all := NewFuture[[]R]()
	go func() {
		values := make([]R, len(futures))
		var firstErr error
		for i, f := range futures {
			v, err := f.Get()
			values[i] = v
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
		all.Complete(values, firstErr)
	}()
	return all
}

func recoveredError(r any) error {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return fmt.Errorf("%w: %v\nstack trace:\n%s", ErrPanic, r, buf[:n])
}
