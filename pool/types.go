package pool

import (
	"context"

	"github.com/utkarsh5026/overlap/internal/types"
)

// Job is a unit of work submitted to a Scheduler. The context carries the
// id of the worker running it, see WorkerID.
type Job func(ctx context.Context)

// TaskInfo describes a job as seen by the instrumentation hooks.
//
// Fields:
//   - ID: Sequence number assigned at submission, starting at 1
//   - Worker: Id of the worker running the job
type TaskInfo struct {
	ID     int64
	Worker int64
}

// submittedTask is a queued job along with the future it settles.
type submittedTask struct {
	id     int64
	job    Job
	future *types.Future[struct{}]
}

type workerKey struct{}

func withWorkerID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, workerKey{}, id)
}

// WorkerID returns the id of the pool worker running the current job or
// loop body. ok is false outside a pool worker.
func WorkerID(ctx context.Context) (id int64, ok bool) {
	id, ok = ctx.Value(workerKey{}).(int64)
	return id, ok
}
