package strategy

import (
	"context"

	"github.com/utkarsh5026/overlap/pool"
	"github.com/utkarsh5026/overlap/workload"
)

// ParallelFor runs units on a bounded data-parallel loop. The loop owns its
// workers for the duration of a single Run.
type ParallelFor struct {
	sim  *workload.Simulator
	opts []pool.WorkerPoolOption
}

// NewParallelFor returns a data-parallel strategy. opts are forwarded to
// pool.For, e.g. pool.WithWorkerCount.
func NewParallelFor(sim *workload.Simulator, opts ...pool.WorkerPoolOption) *ParallelFor {
	return &ParallelFor{sim: sim, opts: opts}
}

func (p *ParallelFor) Name() string        { return NameParallelFor }
func (p *ParallelFor) Description() string { return "Parallel tasks with a parallel for loop" }

// Run blocks until every unit has run. A panic in a unit aborts the whole
// call with a *pool.PanicError.
func (p *ParallelFor) Run(ctx context.Context, units []workload.Unit) {
	pool.For(ctx, len(units), func(ctx context.Context, i int) {
		id, _ := pool.WorkerID(ctx)
		p.sim.Execute(workload.WithExecutor(ctx, workload.Worker(id)), units[i])
	}, p.opts...)
}
