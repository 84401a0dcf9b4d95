package report

import (
	"sync"
	"time"

	"github.com/utkarsh5026/overlap/workload"
)

// EventType tags a recorded narration event.
type EventType int

const (
	EventStrategyStarted EventType = iota
	EventUnitStarted
	EventUnitDone
	EventIterationFinished
	EventStrategyFinished
)

// Event is one narration notice captured by a Recorder.
type Event struct {
	Type      EventType
	Strategy  string
	Executor  workload.Executor
	Unit      workload.Unit
	Iteration int
	Elapsed   time.Duration
	Result    Result
	At        time.Time
}

// Recorder is a Sink that keeps every event in arrival order.
type Recorder struct {
	mu      sync.Mutex
	current string
	events  []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev.At = time.Now()
	if ev.Strategy == "" {
		ev.Strategy = r.current
	}
	r.events = append(r.events, ev)
}

func (r *Recorder) StrategyStarted(name, _ string) {
	r.mu.Lock()
	r.current = name
	r.mu.Unlock()
	r.add(Event{Type: EventStrategyStarted, Strategy: name})
}

func (r *Recorder) UnitStarted(e workload.Executor, u workload.Unit) {
	r.add(Event{Type: EventUnitStarted, Executor: e, Unit: u})
}

func (r *Recorder) UnitDone(e workload.Executor, u workload.Unit, took time.Duration) {
	r.add(Event{Type: EventUnitDone, Executor: e, Unit: u, Elapsed: took})
}

func (r *Recorder) IterationFinished(name string, iteration int, elapsed time.Duration) {
	r.add(Event{Type: EventIterationFinished, Strategy: name, Iteration: iteration, Elapsed: elapsed})
}

func (r *Recorder) StrategyFinished(res Result) {
	r.add(Event{Type: EventStrategyFinished, Strategy: res.Strategy, Result: res})
}

// Events returns a copy of the events recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Filter returns the recorded events of type t for strategy.
func (r *Recorder) Filter(strategy string, t EventType) []Event {
	var out []Event
	for _, ev := range r.Events() {
		if ev.Type == t && ev.Strategy == strategy {
			out = append(out, ev)
		}
	}
	return out
}
