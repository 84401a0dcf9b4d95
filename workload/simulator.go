package workload

import (
	"context"
	"time"
)

// Observer receives the progress notices a Simulator emits. Implementations
// must be safe for concurrent use.
type Observer interface {
	UnitStarted(e Executor, u Unit)
	UnitDone(e Executor, u Unit, took time.Duration)
}

type nopObserver struct{}

func (nopObserver) UnitStarted(Executor, Unit)             {}
func (nopObserver) UnitDone(Executor, Unit, time.Duration) {}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithObserver sets the observer notified around each unit.
func WithObserver(o Observer) SimulatorOption {
	return func(s *Simulator) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithSleeper replaces time.Sleep, e.g. with a scaled or instrumented sleep.
func WithSleeper(sleep func(time.Duration)) SimulatorOption {
	return func(s *Simulator) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// Simulator executes units by blocking for their duration.
type Simulator struct {
	observer Observer
	sleep    func(time.Duration)
}

// NewSimulator returns a Simulator. Without options it sleeps with
// time.Sleep and reports to nobody.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		observer: nopObserver{},
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute blocks the calling goroutine for u.Duration. The start and done
// notices carry the executor found in ctx. ctx is never used to cut the
// work short.
func (s *Simulator) Execute(ctx context.Context, u Unit) {
	e := ExecutorFrom(ctx)
	s.observer.UnitStarted(e, u)

	start := time.Now()
	s.sleep(u.Duration)

	s.observer.UnitDone(e, u, time.Since(start))
}
