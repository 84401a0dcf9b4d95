package strategy

import (
	"context"
	"fmt"

	"github.com/utkarsh5026/overlap/internal/types"
	"github.com/utkarsh5026/overlap/pool"
	"github.com/utkarsh5026/overlap/workload"
)

// WorkerPool dispatches each unit as a job to a shared scheduler. The
// scheduler must already be started; WorkerPool never starts or stops it.
type WorkerPool struct {
	sim   *workload.Simulator
	sched *pool.Scheduler
}

// NewWorkerPool returns a strategy that submits to sched.
func NewWorkerPool(sim *workload.Simulator, sched *pool.Scheduler) *WorkerPool {
	return &WorkerPool{sim: sim, sched: sched}
}

func (w *WorkerPool) Name() string        { return NameWorkerPool }
func (w *WorkerPool) Description() string { return "Parallel tasks with a shared worker pool" }

// Run submits one job per unit, each setting its own completion signal once
// its blocking work is done, and waits for every signal.
//
// Failing to submit, or a job panicking, is fatal: Run panics.
func (w *WorkerPool) Run(ctx context.Context, units []workload.Unit) {
	signals := make([]*types.Signal, len(units))
	futures := make([]*types.Future[struct{}], len(units))

	for i, u := range units {
		sig := types.NewSignal()
		signals[i] = sig

		f, err := w.sched.Submit(func(ctx context.Context) {
			id, _ := pool.WorkerID(ctx)
			w.sim.Execute(workload.WithExecutor(ctx, workload.Worker(id)), u)
			sig.Set()
		})
		if err != nil {
			panic(fmt.Errorf("worker pool: submit %s: %w", u.Label, err))
		}
		futures[i] = f
	}

	for i, sig := range signals {
		awaitSignal(sig, futures[i])
	}
}

// awaitSignal waits for sig. If the job settles its future without having
// set sig, it failed before finishing its work, and waiting would hang.
func awaitSignal(sig *types.Signal, f *types.Future[struct{}]) {
	select {
	case <-sig.Done():
	case <-f.Done():
		if _, err := f.Get(); err != nil {
			panic(fmt.Errorf("worker pool: job failed: %w", err))
		}
		sig.Wait()
	}
}
