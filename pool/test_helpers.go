package pool

import (
	"context"
	"testing"
	"time"
)

// schedulerConfig defines a test configuration for a Scheduler.
type schedulerConfig struct {
	name string
	opts []WorkerPoolOption
}

// getAllConfigs returns the scheduler configurations every lifecycle test runs against.
func getAllConfigs(workerCount int) []schedulerConfig {
	return []schedulerConfig{
		{
			name: "Default",
			opts: []WorkerPoolOption{WithWorkerCount(workerCount)},
		},
		{
			name: "Unbuffered",
			opts: []WorkerPoolOption{WithWorkerCount(workerCount), WithTaskBuffer(0)},
		},
		{
			name: "Pinned",
			opts: []WorkerPoolOption{WithWorkerCount(workerCount), WithPinnedWorkers()},
		},
		{
			name: "RateLimited",
			opts: []WorkerPoolOption{WithWorkerCount(workerCount), WithRateLimit(1000, 100)},
		},
	}
}

func runConfigTest(t *testing.T, testFunc func(t *testing.T, s schedulerConfig), workerCount int, additionalOpts ...WorkerPoolOption) {
	for _, cfg := range getAllConfigs(workerCount) {
		cfg.opts = append(cfg.opts, additionalOpts...)
		t.Run(cfg.name, func(t *testing.T) {
			testFunc(t, cfg)
		})
	}
}

// startedScheduler returns a started scheduler that is shut down when the test ends.
func startedScheduler(t *testing.T, opts ...WorkerPoolOption) *Scheduler {
	t.Helper()

	sched := NewScheduler(opts...)
	if err := sched.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	t.Cleanup(func() {
		_ = sched.Shutdown(5 * time.Second)
	})
	return sched
}

func sleepJob(d time.Duration) Job {
	return func(context.Context) {
		time.Sleep(d)
	}
}
