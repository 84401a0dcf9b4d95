package pool

import (
	"runtime"

	"golang.org/x/time/rate"
)

// WorkerPoolOption is a functional option for configuring a Scheduler or For.
type WorkerPoolOption func(*workerPoolConfig)

type workerPoolConfig struct {
	workerCount     int
	taskBuffer      int
	rateLimiter     *rate.Limiter
	pinWorkers      bool
	beforeTaskStart func(TaskInfo)
	onTaskEnd       func(TaskInfo, error)
}

// WithWorkerCount sets the number of concurrent workers.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTaskBuffer sets the size of the Scheduler's job queue. Submit blocks
// while the queue is full. If not specified, defaults to the worker count.
func WithTaskBuffer(size int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if size >= 0 {
			cfg.taskBuffer = size
		}
	}
}

// WithRateLimit limits how many jobs per second the workers start.
// burst specifies how many jobs may start back to back.
// If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 jobs/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithPinnedWorkers locks every worker goroutine to its own OS thread,
// pinned to core (workerID mod NumCPU) where the platform supports it.
// The thread is discarded when the worker exits.
func WithPinnedWorkers() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.pinWorkers = true
	}
}

// WithBeforeTaskStart registers a hook called on the worker right before a
// Scheduler job runs.
func WithBeforeTaskStart(fn func(TaskInfo)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.beforeTaskStart = fn
	}
}

// WithOnTaskEnd registers a hook called on the worker right after a
// Scheduler job returns, before its future settles.
func WithOnTaskEnd(fn func(TaskInfo, error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.onTaskEnd = fn
	}
}

func createConfig(opts ...WorkerPoolOption) *workerPoolConfig {
	cfg := &workerPoolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		taskBuffer:  -1, // Will be set to workerCount if not specified
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer < 0 {
		cfg.taskBuffer = cfg.workerCount
	}
	return cfg
}
