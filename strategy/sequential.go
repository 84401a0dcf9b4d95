package strategy

import (
	"context"

	"github.com/utkarsh5026/overlap/workload"
)

// Sequential runs units in input order on the calling goroutine.
type Sequential struct {
	sim *workload.Simulator
}

// NewSequential returns the baseline strategy.
func NewSequential(sim *workload.Simulator) *Sequential {
	return &Sequential{sim: sim}
}

func (s *Sequential) Name() string        { return NameSequential }
func (s *Sequential) Description() string { return "Non parallel tasks" }

// Run executes each unit after the previous one returned.
func (s *Sequential) Run(ctx context.Context, units []workload.Unit) {
	ctx = workload.WithExecutor(ctx, workload.Driver())
	for _, u := range units {
		s.sim.Execute(ctx, u)
	}
}
