package strategy

import (
	"sync/atomic"

	"github.com/utkarsh5026/overlap/internal/cpu"
	"github.com/utkarsh5026/overlap/internal/types"
)

var threadIDs atomic.Int64

// ThreadOption configures a spawned thread.
type ThreadOption func(*threadConfig)

type threadConfig struct {
	core int
}

// WithCore pins the thread to a CPU core where the platform supports it.
func WithCore(core int) ThreadOption {
	return func(c *threadConfig) {
		if core >= 0 {
			c.core = core
		}
	}
}

// Thread is an owned handle to a dedicated execution context: a goroutine
// locked to its own OS thread for its whole life. The OS thread terminates
// with the goroutine and is never reused. It is created running by Spawn
// and released by Join.
type Thread struct {
	id   int64
	done *types.Signal
}

// Spawn starts fn on a new dedicated thread and returns its handle. fn
// receives the thread id. A panic in fn is not recovered.
func Spawn(fn func(id int64), opts ...ThreadOption) *Thread {
	cfg := threadConfig{core: cpu.NoCore}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Thread{
		id:   threadIDs.Add(1),
		done: types.NewSignal(),
	}

	go func() {
		defer t.done.Set()
		cpu.DedicateThread(cfg.core)
		fn(t.id)
	}()
	return t
}

// Join blocks until the thread has terminated. Joining a terminated thread,
// or joining more than once, returns immediately.
func (t *Thread) Join() {
	t.done.Wait()
}
