package harness

import (
	"context"
	"runtime"
	"time"

	"github.com/utkarsh5026/overlap/report"
	"github.com/utkarsh5026/overlap/strategy"
	"github.com/utkarsh5026/overlap/workload"
)

// Step pairs a strategy with the workload it runs. Workload is called for
// every iteration so each run gets fresh units.
type Step struct {
	Strategy strategy.Strategy
	Workload func() []workload.Unit
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithSink sets where narration goes. Defaults to report.Discard.
func WithSink(s report.Sink) DriverOption {
	return func(d *Driver) {
		if s != nil {
			d.sink = s
		}
	}
}

// WithIterations sets how many measured runs each strategy gets.
func WithIterations(n int) DriverOption {
	return func(d *Driver) {
		if n > 0 {
			d.iterations = n
		}
	}
}

// WithWarmup sets how many unmeasured runs precede the measured ones.
func WithWarmup(n int) DriverOption {
	return func(d *Driver) {
		if n >= 0 {
			d.warmup = n
		}
	}
}

// WithPause sets the idle time between strategies.
func WithPause(p time.Duration) DriverOption {
	return func(d *Driver) {
		if p >= 0 {
			d.pause = p
		}
	}
}

// Driver runs strategies one after another and times each of them.
type Driver struct {
	sink       report.Sink
	timer      *Timer
	iterations int
	warmup     int
	pause      time.Duration
}

// NewDriver returns a Driver running one measured iteration per strategy.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		sink:       report.Discard,
		timer:      NewTimer(),
		iterations: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes every step in order and returns one result per step. A step
// starts only after the previous one has fully completed, including work a
// strategy left running past its Run.
func (d *Driver) Run(ctx context.Context, steps []Step) []report.Result {
	results := make([]report.Result, 0, len(steps))
	for i, step := range steps {
		results = append(results, d.RunStep(ctx, step))

		if d.pause > 0 && i < len(steps)-1 {
			time.Sleep(d.pause)
		}
	}
	return results
}

// RunStep measures a single step.
func (d *Driver) RunStep(ctx context.Context, step Step) report.Result {
	s := step.Strategy
	d.sink.StrategyStarted(s.Name(), s.Description())

	for range d.warmup {
		s.Run(ctx, step.Workload())
		drain(s)
		runtime.GC()
	}

	var units []workload.Unit
	samples := make([]time.Duration, 0, d.iterations)
	for i := range d.iterations {
		units = step.Workload()
		samples = append(samples, d.measure(ctx, s, units))
		d.sink.IterationFinished(s.Name(), i, samples[i])

		drain(s)
	}

	stats := calculateStats(samples)
	elapsed := median(samples)

	result := report.Result{
		Strategy:    s.Name(),
		Description: s.Description(),
		Elapsed:     elapsed,
		Samples:     samples,
		Stats:       stats,
		Units:       len(units),
		SumBound:    workload.TotalDuration(units),
		MaxBound:    workload.MaxDuration(units),
	}
	d.sink.StrategyFinished(result)
	return result
}

// measure brackets one Run with the timer.
func (d *Driver) measure(ctx context.Context, s strategy.Strategy, units []workload.Unit) time.Duration {
	d.timer.Restart()
	s.Run(ctx, units)
	d.timer.Stop()
	return d.timer.Elapsed()
}

// drain waits for work a strategy left running, after its time was read.
func drain(s strategy.Strategy) {
	if dr, ok := s.(strategy.Drainer); ok {
		dr.Drain()
	}
}
