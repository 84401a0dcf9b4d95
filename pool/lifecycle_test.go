package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_Start(t *testing.T) {
	t.Run("successful start", func(t *testing.T) {
		runConfigTest(t, func(t *testing.T, s schedulerConfig) {
			sched := NewScheduler(s.opts...)

			if err := sched.Start(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			defer sched.Shutdown(time.Second)

			if sched.state == nil {
				t.Error("pool state should not be nil after start")
			}
			if !sched.state.started.Load() {
				t.Error("pool should be marked as started")
			}
		}, 4)
	})

	t.Run("double start fails", func(t *testing.T) {
		sched := startedScheduler(t, WithWorkerCount(2))

		err := sched.Start(context.Background())
		if !errors.Is(err, ErrAlreadyStarted) {
			t.Errorf("expected ErrAlreadyStarted, got %v", err)
		}
	})

	t.Run("cancelled context does not stop workers", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sched := NewScheduler(WithWorkerCount(2))
		if err := sched.Start(ctx); err != nil {
			t.Fatalf("start should succeed with cancelled context: %v", err)
		}
		defer sched.Shutdown(time.Second)

		future, err := sched.Submit(func(context.Context) {})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if _, err := future.Get(); err != nil {
			t.Errorf("job should still run, got %v", err)
		}
	})
}

func TestScheduler_Shutdown(t *testing.T) {
	t.Run("shutdown before start", func(t *testing.T) {
		sched := NewScheduler()
		if err := sched.Shutdown(time.Second); !errors.Is(err, ErrNotStarted) {
			t.Errorf("expected ErrNotStarted, got %v", err)
		}
	})

	t.Run("double shutdown", func(t *testing.T) {
		sched := NewScheduler(WithWorkerCount(2))
		_ = sched.Start(context.Background())

		if err := sched.Shutdown(time.Second); err != nil {
			t.Fatalf("first shutdown failed: %v", err)
		}
		if err := sched.Shutdown(time.Second); !errors.Is(err, ErrShutdown) {
			t.Errorf("expected ErrShutdown, got %v", err)
		}
	})

	t.Run("drains queued jobs", func(t *testing.T) {
		runConfigTest(t, func(t *testing.T, s schedulerConfig) {
			sched := NewScheduler(append(s.opts, WithTaskBuffer(16))...)
			_ = sched.Start(context.Background())

			var ran atomic.Int32
			for range 8 {
				if _, err := sched.Submit(func(context.Context) {
					time.Sleep(5 * time.Millisecond)
					ran.Add(1)
				}); err != nil {
					t.Fatalf("submit failed: %v", err)
				}
			}

			if err := sched.Shutdown(0); err != nil {
				t.Fatalf("shutdown failed: %v", err)
			}
			if got := ran.Load(); got != 8 {
				t.Errorf("expected 8 drained jobs, got %d", got)
			}
		}, 2)
	})

	t.Run("timeout", func(t *testing.T) {
		sched := NewScheduler(WithWorkerCount(1))
		_ = sched.Start(context.Background())
		_, _ = sched.Submit(sleepJob(200 * time.Millisecond))

		if err := sched.Shutdown(20 * time.Millisecond); !errors.Is(err, ErrShutdownTimeout) {
			t.Errorf("expected ErrShutdownTimeout, got %v", err)
		}
	})

	t.Run("submit after shutdown", func(t *testing.T) {
		sched := NewScheduler(WithWorkerCount(1))
		_ = sched.Start(context.Background())
		_ = sched.Shutdown(time.Second)

		if _, err := sched.Submit(func(context.Context) {}); !errors.Is(err, ErrShutdown) {
			t.Errorf("expected ErrShutdown, got %v", err)
		}
	})
}
