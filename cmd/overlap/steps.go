package main

import (
	"github.com/utkarsh5026/overlap/harness"
	"github.com/utkarsh5026/overlap/pool"
	"github.com/utkarsh5026/overlap/strategy"
	"github.com/utkarsh5026/overlap/workload"
)

// buildSteps assembles the strategies to run, in the order they run.
func buildSteps(f *Flags, sim *workload.Simulator, sched *pool.Scheduler) []harness.Step {
	threeDownloads := func() []workload.Unit {
		return scaled(workload.Repeat(3, workload.Download), f.Scale)
	}
	downloadAndWrite := func() []workload.Unit {
		return scaled([]workload.Unit{workload.Download(), workload.Write()}, f.Scale)
	}

	loopOpts := []pool.WorkerPoolOption{pool.WithWorkerCount(f.WorkerCount())}
	if f.Pin {
		loopOpts = append(loopOpts, pool.WithPinnedWorkers())
	}

	steps := []harness.Step{
		{Strategy: strategy.NewSequential(sim), Workload: threeDownloads},
		{Strategy: strategy.NewParallelFor(sim, loopOpts...), Workload: threeDownloads},
		{Strategy: strategy.NewWorkerPool(sim, sched), Workload: downloadAndWrite},
		{Strategy: strategy.NewAsyncFireAndForget(sim), Workload: downloadAndWrite},
	}
	if f.IncludeAwaited || f.Strategy == strategy.NameAsyncAwait {
		steps = append(steps, harness.Step{Strategy: strategy.NewAsyncAwait(sim), Workload: downloadAndWrite})
	}
	steps = append(steps, harness.Step{Strategy: strategy.NewThreads(sim, f.Pin), Workload: downloadAndWrite})

	if f.Strategy == "" {
		return steps
	}
	for _, s := range steps {
		if s.Strategy.Name() == f.Strategy {
			return []harness.Step{s}
		}
	}
	return nil
}

func scaled(units []workload.Unit, factor float64) []workload.Unit {
	for i := range units {
		units[i] = units[i].Scaled(factor)
	}
	return units
}

// countSteps is the number of steps buildSteps returns for f.
func countSteps(f *Flags) int {
	if f.Strategy != "" {
		return 1
	}
	if f.IncludeAwaited {
		return len(strategyNames(true))
	}
	return len(strategyNames(false))
}
