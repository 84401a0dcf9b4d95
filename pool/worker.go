package pool

import (
	"context"
	"fmt"
	"runtime"

	"github.com/utkarsh5026/overlap/internal/cpu"
	"github.com/utkarsh5026/overlap/internal/types"
)

// worker is the event loop of one persistent Scheduler worker. It runs jobs
// until the queue is closed and drained.
func (s *Scheduler) worker(ctx context.Context, workerID int64, tasks <-chan *submittedTask) error {
	if s.config.pinWorkers {
		cpu.DedicateThread(int(workerID))
	}

	ctx = withWorkerID(ctx, workerID)
	for t := range tasks {
		s.execute(ctx, workerID, t)
	}
	return nil
}

// execute runs one job and settles its future. The future settles after the
// job returned, so a waiter can never observe completion early.
func (s *Scheduler) execute(ctx context.Context, workerID int64, t *submittedTask) {
	info := TaskInfo{ID: t.id, Worker: workerID}

	if s.config.rateLimiter != nil {
		if err := s.config.rateLimiter.Wait(ctx); err != nil {
			err = fmt.Errorf("rate limiter: %w", err)
			s.finish(info, t, err)
			return
		}
	}

	if s.config.beforeTaskStart != nil {
		s.config.beforeTaskStart(info)
	}

	err := runWithRecovery(ctx, t.job)
	s.finish(info, t, err)
}

func (s *Scheduler) finish(info TaskInfo, t *submittedTask, err error) {
	if s.config.onTaskEnd != nil {
		s.config.onTaskEnd(info, err)
	}
	t.future.Complete(struct{}{}, err)
}

// runWithRecovery executes a job, converting a panic into an error so a
// single job cannot take a worker down.
func runWithRecovery(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", types.ErrPanic, r, buf[:n])
		}
	}()

	job(ctx)
	return nil
}
