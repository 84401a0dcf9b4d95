package strategy

import (
	"context"
	"sync/atomic"

	"github.com/utkarsh5026/overlap/workload"
)

// Names of the built-in strategies, as accepted on the command line.
const (
	NameSequential         = "sequential"
	NameParallelFor        = "parallel-for"
	NameWorkerPool         = "worker-pool"
	NameAsyncFireAndForget = "async"
	NameAsyncAwait         = "async-awaited"
	NameThreads            = "threads"
)

// Strategy runs a set of units under one concurrency discipline.
type Strategy interface {
	// Name returns the short, stable identifier of the strategy.
	Name() string

	// Description returns the banner shown before the strategy runs.
	Description() string

	// Run executes every unit. Unless documented otherwise it returns only
	// after all units have completed. ctx only carries values.
	Run(ctx context.Context, units []workload.Unit)
}

// Drainer is implemented by strategies whose Run may return while units are
// still executing. Drain blocks until that outstanding work has finished.
type Drainer interface {
	Drain()
}

// taskIDs hands out ids for asynchronous task executors.
var taskIDs atomic.Int64

func nextTaskID() int64 {
	return taskIDs.Add(1)
}
