package strategy

import (
	"context"

	"github.com/utkarsh5026/overlap/workload"
)

// Threads runs every unit on its own dedicated thread and joins them all.
// Threads are created per Run and never reused.
type Threads struct {
	sim *workload.Simulator
	pin bool
}

// NewThreads returns the dedicated-thread strategy. With pin set, thread i of
// a Run is pinned to core i.
func NewThreads(sim *workload.Simulator, pin bool) *Threads {
	return &Threads{sim: sim, pin: pin}
}

func (t *Threads) Name() string        { return NameThreads }
func (t *Threads) Description() string { return "Parallel tasks with dedicated threads" }

// Run spawns one thread per unit, then joins each of them.
func (t *Threads) Run(ctx context.Context, units []workload.Unit) {
	handles := make([]*Thread, len(units))
	for i, u := range units {
		var opts []ThreadOption
		if t.pin {
			opts = append(opts, WithCore(i))
		}
		handles[i] = Spawn(func(id int64) {
			t.sim.Execute(workload.WithExecutor(ctx, workload.Thread(id)), u)
		}, opts...)
	}

	for _, h := range handles {
		h.Join()
	}
}
