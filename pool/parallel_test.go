package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFor(t *testing.T) {
	t.Run("runs every index once", func(t *testing.T) {
		seen := make([]atomic.Int32, 50)
		For(context.Background(), len(seen), func(_ context.Context, i int) {
			seen[i].Add(1)
		}, WithWorkerCount(4))

		for i := range seen {
			if got := seen[i].Load(); got != 1 {
				t.Errorf("index %d ran %d times", i, got)
			}
		}
	})

	t.Run("zero count returns", func(t *testing.T) {
		For(context.Background(), 0, func(context.Context, int) {
			t.Error("body should not run")
		})
	})

	t.Run("overlaps with enough workers", func(t *testing.T) {
		start := time.Now()
		For(context.Background(), 3, func(context.Context, int) {
			time.Sleep(60 * time.Millisecond)
		}, WithWorkerCount(3))
		elapsed := time.Since(start)

		if elapsed < 60*time.Millisecond || elapsed >= 150*time.Millisecond {
			t.Errorf("expected ~60ms, got %v", elapsed)
		}
	})

	t.Run("bounded by worker count", func(t *testing.T) {
		var running, peak atomic.Int32
		For(context.Background(), 8, func(context.Context, int) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
		}, WithWorkerCount(2))

		if got := peak.Load(); got > 2 {
			t.Errorf("expected at most 2 concurrent bodies, saw %d", got)
		}
	})

	t.Run("degrades toward sequential with one worker", func(t *testing.T) {
		start := time.Now()
		For(context.Background(), 3, func(context.Context, int) {
			time.Sleep(30 * time.Millisecond)
		}, WithWorkerCount(1))

		if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
			t.Errorf("expected >= 90ms with one worker, got %v", elapsed)
		}
	})

	t.Run("bodies see worker ids", func(t *testing.T) {
		var mu sync.Mutex
		ids := map[int64]bool{}
		For(context.Background(), 6, func(ctx context.Context, _ int) {
			id, ok := WorkerID(ctx)
			if !ok {
				t.Error("missing worker id")
			}
			mu.Lock()
			ids[id] = true
			mu.Unlock()
		}, WithWorkerCount(2))

		for id := range ids {
			if id < 0 || id >= 2 {
				t.Errorf("unexpected worker id %d", id)
			}
		}
	})

	t.Run("panic aborts the call", func(t *testing.T) {
		var finished atomic.Int32

		defer func() {
			r := recover()
			var pe *PanicError
			err, ok := r.(error)
			if !ok || !errors.As(err, &pe) {
				t.Fatalf("expected *PanicError, got %v", r)
			}
			if pe.Index != 0 || pe.Value != "boom" {
				t.Errorf("unexpected panic error %+v", pe)
			}
			if finished.Load() != 1 {
				t.Errorf("running body should finish before For panics, got %d", finished.Load())
			}
		}()

		For(context.Background(), 2, func(_ context.Context, i int) {
			if i == 0 {
				time.Sleep(10 * time.Millisecond)
				panic("boom")
			}
			time.Sleep(40 * time.Millisecond)
			finished.Add(1)
		}, WithWorkerCount(2))

		t.Fatal("For should have panicked")
	})
}
