package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/utkarsh5026/overlap/internal/types"
)

func TestScheduler_Submit(t *testing.T) {
	t.Run("submit before start", func(t *testing.T) {
		sched := NewScheduler()
		if _, err := sched.Submit(func(context.Context) {}); !errors.Is(err, ErrNotStarted) {
			t.Errorf("expected ErrNotStarted, got %v", err)
		}
	})

	t.Run("future settles after the job returns", func(t *testing.T) {
		runConfigTest(t, func(t *testing.T, s schedulerConfig) {
			sched := startedScheduler(t, s.opts...)

			var finished atomic.Bool
			future, err := sched.Submit(func(context.Context) {
				time.Sleep(30 * time.Millisecond)
				finished.Store(true)
			})
			if err != nil {
				t.Fatalf("submit failed: %v", err)
			}

			if _, err := future.Get(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !finished.Load() {
				t.Error("future settled before the job finished")
			}
		}, 2)
	})

	t.Run("jobs overlap across workers", func(t *testing.T) {
		sched := startedScheduler(t, WithWorkerCount(2))

		start := time.Now()
		f1, _ := sched.Submit(sleepJob(80 * time.Millisecond))
		f2, _ := sched.Submit(sleepJob(60 * time.Millisecond))
		_, _ = types.WhenAll(f1, f2).Get()
		elapsed := time.Since(start)

		if elapsed >= 140*time.Millisecond {
			t.Errorf("jobs did not overlap: %v", elapsed)
		}
		if elapsed < 80*time.Millisecond {
			t.Errorf("completed before the slowest job: %v", elapsed)
		}
	})

	t.Run("single worker serializes", func(t *testing.T) {
		sched := startedScheduler(t, WithWorkerCount(1))

		start := time.Now()
		f1, _ := sched.Submit(sleepJob(40 * time.Millisecond))
		f2, _ := sched.Submit(sleepJob(40 * time.Millisecond))
		_, _ = f1.Get()
		_, _ = f2.Get()

		if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
			t.Errorf("single worker ran jobs concurrently: %v", elapsed)
		}
	})

	t.Run("job sees worker id", func(t *testing.T) {
		sched := startedScheduler(t, WithWorkerCount(3))

		var (
			got int64 = -1
			ok  bool
		)
		f, _ := sched.Submit(func(ctx context.Context) {
			got, ok = WorkerID(ctx)
		})
		_, _ = f.Get()

		if !ok || got < 0 || got >= 3 {
			t.Errorf("expected worker id in [0,3), got %d (ok=%v)", got, ok)
		}
	})

	t.Run("panic is reported through the future", func(t *testing.T) {
		sched := startedScheduler(t, WithWorkerCount(1))

		f, _ := sched.Submit(func(context.Context) { panic("boom") })
		if _, err := f.Get(); !errors.Is(err, types.ErrPanic) {
			t.Errorf("expected ErrPanic, got %v", err)
		}

		// the worker survives
		f, _ = sched.Submit(func(context.Context) {})
		if _, err := f.Get(); err != nil {
			t.Errorf("worker did not survive the panic: %v", err)
		}
	})

	t.Run("concurrent submitters", func(t *testing.T) {
		sched := startedScheduler(t, WithWorkerCount(4))

		var ran atomic.Int32
		var wg sync.WaitGroup
		for range 8 {
			wg.Go(func() {
				for range 10 {
					f, err := sched.Submit(func(context.Context) { ran.Add(1) })
					if err != nil {
						t.Errorf("submit failed: %v", err)
						return
					}
					_, _ = f.Get()
				}
			})
		}
		wg.Wait()

		if got := ran.Load(); got != 80 {
			t.Errorf("expected 80 jobs, got %d", got)
		}
	})
}

func TestScheduler_Hooks(t *testing.T) {
	var (
		mu     sync.Mutex
		events []string
	)
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, s)
	}

	sched := startedScheduler(t,
		WithWorkerCount(1),
		WithBeforeTaskStart(func(info TaskInfo) { record("start") }),
		WithOnTaskEnd(func(info TaskInfo, err error) {
			if info.ID != 1 {
				t.Errorf("expected task id 1, got %d", info.ID)
			}
			record("end")
		}),
	)

	f, _ := sched.Submit(func(context.Context) { record("job") })
	_, _ = f.Get()

	mu.Lock()
	defer mu.Unlock()
	want := []string{"start", "job", "end"}
	if len(events) != len(want) {
		t.Fatalf("expected events %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], events[i])
		}
	}
}
