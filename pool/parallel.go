package pool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/utkarsh5026/overlap/internal/cpu"
	"golang.org/x/sync/errgroup"
)

// PanicError is what For panics with when one of its bodies panicked.
type PanicError struct {
	Index int
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel body %d panicked: %v\nstack trace:\n%s", e.Index, e.Value, e.Stack)
}

// For runs body(ctx, i) for every i in [0, count) on at most workerCount
// workers and returns once every body has returned. Bodies run in no
// particular order. The context passed to each body carries the id of the
// worker running it.
//
// Only WithWorkerCount and WithPinnedWorkers apply to For.
//
// If any body panics, no new indices are started, the running ones are
// waited for, and For panics with a *PanicError describing the first panic.
func For(ctx context.Context, count int, body func(ctx context.Context, i int), opts ...WorkerPoolOption) {
	if count <= 0 {
		return
	}

	cfg := createConfig(opts...)
	workers := min(cfg.workerCount, count)

	var (
		next    atomic.Int64
		failed  atomic.Bool
		panicMu sync.Mutex
		first   *PanicError
	)

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			if cfg.pinWorkers {
				cpu.DedicateThread(w)
			}

			wctx := withWorkerID(ctx, int64(w))
			for !failed.Load() {
				i := int(next.Add(1) - 1)
				if i >= count {
					return nil
				}

				if pe := runBody(wctx, i, body); pe != nil {
					panicMu.Lock()
					if first == nil {
						first = pe
					}
					panicMu.Unlock()
					failed.Store(true)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if first != nil {
		panic(first)
	}
}

func runBody(ctx context.Context, i int, body func(context.Context, int)) (pe *PanicError) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			pe = &PanicError{Index: i, Value: r, Stack: buf[:n]}
		}
	}()

	body(ctx, i)
	return nil
}
