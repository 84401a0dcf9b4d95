package strategy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/utkarsh5026/overlap/pool"
	"github.com/utkarsh5026/overlap/workload"
)

const (
	longUnit  = 80 * time.Millisecond
	shortUnit = 60 * time.Millisecond
	slack     = 50 * time.Millisecond
)

type unitEvent struct {
	done     bool
	executor workload.Executor
	label    string
	at       time.Time
}

// recorder is a concurrency-safe workload.Observer.
type recorder struct {
	mu     sync.Mutex
	events []unitEvent
}

func (r *recorder) UnitStarted(e workload.Executor, u workload.Unit) {
	r.add(unitEvent{executor: e, label: u.Label, at: time.Now()})
}

func (r *recorder) UnitDone(e workload.Executor, u workload.Unit, _ time.Duration) {
	r.add(unitEvent{done: true, executor: e, label: u.Label, at: time.Now()})
}

func (r *recorder) add(ev unitEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) doneCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.done {
			n++
		}
	}
	return n
}

func (r *recorder) snapshot() []unitEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]unitEvent(nil), r.events...)
}

func newSim() (*workload.Simulator, *recorder) {
	rec := &recorder{}
	return workload.NewSimulator(workload.WithObserver(rec)), rec
}

// pair returns one long download and one shorter write, the two-unit workload.
func pair() []workload.Unit {
	return []workload.Unit{
		workload.NewUnit(workload.KindDownload, longUnit),
		workload.NewUnit(workload.KindWrite, shortUnit),
	}
}

func timeRun(s Strategy, units []workload.Unit) time.Duration {
	start := time.Now()
	s.Run(context.Background(), units)
	return time.Since(start)
}

func sharedScheduler(t *testing.T, opts ...pool.WorkerPoolOption) *pool.Scheduler {
	t.Helper()

	sched := pool.NewScheduler(opts...)
	if err := sched.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	t.Cleanup(func() {
		_ = sched.Shutdown(5 * time.Second)
	})
	return sched
}

func assertOverlapped(t *testing.T, elapsed time.Duration, units []workload.Unit) {
	t.Helper()

	longest := workload.MaxDuration(units)
	total := workload.TotalDuration(units)
	if elapsed < longest {
		t.Errorf("finished in %v, before the longest unit (%v)", elapsed, longest)
	}
	if elapsed > longest+slack {
		t.Errorf("took %v, expected about %v", elapsed, longest)
	}
	if elapsed >= total {
		t.Errorf("took %v, no better than sequential %v", elapsed, total)
	}
}
