package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/utkarsh5026/overlap/internal/types"
	"golang.org/x/sync/errgroup"
)

// Scheduler represents a long-running, reusable worker pool that is started
// once and then accepts job submissions from any goroutine. It is meant to
// be shared: callers submit jobs and wait on their futures, they never size,
// start or stop the pool themselves.
type Scheduler struct {
	config *workerPoolConfig
	mu     sync.RWMutex
	state  *poolState
}

// poolState holds the runtime state of a started Scheduler.
type poolState struct {
	started       atomic.Bool
	shutdown      atomic.Bool
	taskIDCounter atomic.Int64
	tasks         chan *submittedTask
	done          chan struct{} // Closed when all workers have finished
}

// NewScheduler creates a new Scheduler with the specified options.
// This does NOT start any workers; call Start first.
//
// Example:
//
//	sched := NewScheduler(WithWorkerCount(8), WithTaskBuffer(32))
//	_ = sched.Start(ctx)
//	future, _ := sched.Submit(job)
func NewScheduler(opts ...WorkerPoolOption) *Scheduler {
	return &Scheduler{
		config: createConfig(opts...),
	}
}

// WorkerCount returns the number of persistent workers the pool runs.
func (s *Scheduler) WorkerCount() int {
	return s.config.workerCount
}

// Start launches the persistent workers. ctx is handed to every job (with
// the worker id attached); cancelling it does not stop the pool.
//
// Returns ErrAlreadyStarted if the pool was started before.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil && s.state.started.Load() {
		return ErrAlreadyStarted
	}

	state := &poolState{
		tasks: make(chan *submittedTask, s.config.taskBuffer),
		done:  make(chan struct{}),
	}
	s.state = state
	state.started.Store(true)

	var g errgroup.Group
	for i := range s.config.workerCount {
		g.Go(func() error {
			return s.worker(ctx, int64(i), state.tasks)
		})
	}

	go func() {
		_ = g.Wait()
		close(state.done)
	}()

	debugLog("scheduler started with %d workers", s.config.workerCount)
	return nil
}

// Submit queues job and returns a future that settles once the job has
// returned. Submit blocks while the queue is full.
//
// Returns:
//   - future: settles with a nil error, or an error wrapping types.ErrPanic
//     if the job panicked
//   - error: ErrNotStarted or ErrShutdown
//
// Example:
//
//	future, err := sched.Submit(job)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = future.Get()
func (s *Scheduler) Submit(job Job) (*types.Future[struct{}], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	if state == nil || !state.started.Load() {
		return nil, ErrNotStarted
	}

	if state.shutdown.Load() {
		return nil, ErrShutdown
	}

	t := &submittedTask{
		id:     state.taskIDCounter.Add(1),
		job:    job,
		future: types.NewFuture[struct{}](),
	}

	// The read lock keeps Shutdown from closing the queue under this send.
	state.tasks <- t
	return t.future, nil
}

// Shutdown stops accepting jobs, lets the workers drain everything already
// queued, and waits for them to exit.
//
// Parameters:
//   - timeout: Maximum duration to wait for the workers (0 = wait forever)
//
// Returns:
//   - error: ErrNotStarted, ErrShutdown if called twice, or
//     ErrShutdownTimeout if the workers did not exit in time
func (s *Scheduler) Shutdown(timeout time.Duration) error {
	s.mu.Lock()
	state := s.state
	if state == nil || !state.started.Load() {
		s.mu.Unlock()
		return ErrNotStarted
	}

	if !state.shutdown.CompareAndSwap(false, true) {
		s.mu.Unlock()
		return ErrShutdown
	}
	close(state.tasks)
	s.mu.Unlock()

	debugLog("scheduler shutting down")
	return waitUntil(state.done, timeout)
}
