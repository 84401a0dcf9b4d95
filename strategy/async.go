package strategy

import (
	"context"
	"fmt"

	"github.com/utkarsh5026/overlap/internal/types"
	"github.com/utkarsh5026/overlap/workload"
)

// startTasks launches one asynchronous task per unit and returns the
// combinator that settles when all of them have finished.
func startTasks(ctx context.Context, sim *workload.Simulator, units []workload.Unit) *types.Future[[]struct{}] {
	futures := make([]*types.Future[struct{}], len(units))
	for i, u := range units {
		tctx := workload.WithExecutor(ctx, workload.Task(nextTaskID()))
		futures[i] = types.Go(func() (struct{}, error) {
			sim.Execute(tctx, u)
			return struct{}{}, nil
		})
	}
	return types.WhenAll(futures...)
}

func mustSettle(f *types.Future[[]struct{}]) {
	if _, err := f.Get(); err != nil {
		panic(fmt.Errorf("async task failed: %w", err))
	}
}

// AsyncFireAndForget starts every unit as an asynchronous task and builds
// the all-complete combinator without waiting on it. Run therefore returns
// after scheduling, typically long before the units finish, and the elapsed
// time measured around it covers scheduling only.
//
// The outstanding combinator is kept until Drain is called.
type AsyncFireAndForget struct {
	sim     *workload.Simulator
	pending *types.Future[[]struct{}]
}

// NewAsyncFireAndForget returns the un-awaited async strategy.
func NewAsyncFireAndForget(sim *workload.Simulator) *AsyncFireAndForget {
	return &AsyncFireAndForget{sim: sim}
}

func (a *AsyncFireAndForget) Name() string { return NameAsyncFireAndForget }
func (a *AsyncFireAndForget) Description() string {
	return "Parallel tasks with async tasks (combinator not awaited)"
}

// Run starts the tasks and returns without waiting for them.
func (a *AsyncFireAndForget) Run(ctx context.Context, units []workload.Unit) {
	a.Drain()
	a.pending = startTasks(ctx, a.sim, units)
}

// Pending returns the combinator of the last Run, or nil once drained.
func (a *AsyncFireAndForget) Pending() *types.Future[[]struct{}] {
	return a.pending
}

// Drain waits for the tasks started by the last Run.
func (a *AsyncFireAndForget) Drain() {
	if a.pending == nil {
		return
	}
	f := a.pending
	a.pending = nil
	mustSettle(f)
}

// AsyncAwait starts every unit as an asynchronous task and waits on the
// all-complete combinator before returning.
type AsyncAwait struct {
	sim *workload.Simulator
}

// NewAsyncAwait returns the awaited async strategy.
func NewAsyncAwait(sim *workload.Simulator) *AsyncAwait {
	return &AsyncAwait{sim: sim}
}

func (a *AsyncAwait) Name() string { return NameAsyncAwait }
func (a *AsyncAwait) Description() string {
	return "Parallel tasks with async tasks (combinator awaited)"
}

// Run starts the tasks and blocks until all of them have finished.
func (a *AsyncAwait) Run(ctx context.Context, units []workload.Unit) {
	mustSettle(startTasks(ctx, a.sim, units))
}
