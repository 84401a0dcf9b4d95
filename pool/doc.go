// Package pool provides the worker pools used to run blocking units of work.
//
// Two shapes are offered:
//
//   - Scheduler: a long-running pool of persistent workers. It is started
//     once, accepts jobs via Submit for the lifetime of the process, and is
//     shut down at exit. Each Submit returns a Future that settles when the
//     job has finished.
//   - For: a data-parallel loop that runs body(i) for every i in [0, count)
//     on a bounded set of workers and returns when all bodies have returned.
//
// # Scheduler
//
//	sched := pool.NewScheduler(pool.WithWorkerCount(4))
//	if err := sched.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer sched.Shutdown(5 * time.Second)
//
//	future, err := sched.Submit(func(ctx context.Context) {
//	    id, _ := pool.WorkerID(ctx)
//	    fmt.Println("running on worker", id)
//	})
//	_, err = future.Get()
//
// The scheduler never cancels a running job. Cancelling the context passed to
// Start does not stop the workers either; use Shutdown, which drains every
// job already queued before returning.
//
// # Parallel loop
//
//	pool.For(ctx, 3, func(ctx context.Context, i int) {
//	    download(i)
//	}, pool.WithWorkerCount(3))
//
// A panic in one body is fatal to the whole call: For stops handing out new
// indices, waits for the bodies already running, then panics on the caller
// with a *PanicError.
//
// # Configuration Options
//
//   - WithWorkerCount(n): number of workers (default: GOMAXPROCS)
//   - WithTaskBuffer(n): Scheduler queue size (default: worker count)
//   - WithRateLimit(perSecond, burst): throttle job starts
//   - WithPinnedWorkers(): lock every worker to its own OS thread
//   - WithBeforeTaskStart / WithOnTaskEnd: instrumentation hooks
package pool
