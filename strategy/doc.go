// Package strategy implements the concurrency disciplines the harness
// compares. Every Strategy runs a fixed set of workload units to completion
// and returns only after all of them have finished, with one documented
// exception:
//
//   - Sequential: units run one after another on the calling goroutine.
//   - ParallelFor: units run on a bounded data-parallel loop (pool.For).
//   - WorkerPool: units are submitted to a shared, injected pool.Scheduler;
//     each job sets its own types.Signal and the caller waits on all of them.
//   - AsyncFireAndForget: units start as asynchronous tasks and an
//     all-complete combinator is built but not awaited, so Run returns
//     while the units are still executing. The outstanding work is exposed
//     through the Drainer interface.
//   - AsyncAwait: the same as AsyncFireAndForget, but the combinator is awaited.
//   - Threads: each unit runs on its own dedicated, OS-thread-locked
//     goroutine owned through a *Thread handle and joined by the caller.
package strategy
