// Package workload simulates blocking, I/O-shaped units of work.
//
// A Unit names a kind of work ("download" or "write") and a fixed
// duration. A Simulator executes a unit by blocking the calling goroutine
// for that duration, announcing the start and end of the work to an
// Observer together with the Executor that ran it.
//
//	sim := workload.NewSimulator(workload.WithObserver(sink))
//	ctx := workload.WithExecutor(context.Background(), workload.Thread(1))
//	sim.Execute(ctx, workload.Download())
//
// Execution cannot fail and cannot be cancelled; the context only carries
// the executor identity.
package workload
