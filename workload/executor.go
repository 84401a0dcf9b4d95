package workload

import (
	"context"
	"fmt"
)

// ExecutorKind says what sort of execution context ran a unit.
type ExecutorKind int

const (
	ExecutorDriver ExecutorKind = iota
	ExecutorWorker
	ExecutorTask
	ExecutorThread
)

func (k ExecutorKind) String() string {
	switch k {
	case ExecutorWorker:
		return "worker"
	case ExecutorTask:
		return "task"
	case ExecutorThread:
		return "thread"
	default:
		return "driver"
	}
}

// Executor identifies the execution context a unit ran on. It is used for
// narration only.
type Executor struct {
	Kind ExecutorKind
	ID   int64
}

func (e Executor) String() string {
	return fmt.Sprintf("%s-%d", e.Kind, e.ID)
}

// Driver is the executor of the harness goroutine itself.
func Driver() Executor { return Executor{Kind: ExecutorDriver} }

// Worker is a shared pool worker.
func Worker(id int64) Executor { return Executor{Kind: ExecutorWorker, ID: id} }

// Task is an asynchronous task goroutine.
func Task(id int64) Executor { return Executor{Kind: ExecutorTask, ID: id} }

// Thread is a dedicated OS-thread-locked goroutine.
func Thread(id int64) Executor { return Executor{Kind: ExecutorThread, ID: id} }

type executorKey struct{}

// WithExecutor returns a copy of ctx carrying e.
func WithExecutor(ctx context.Context, e Executor) context.Context {
	return context.WithValue(ctx, executorKey{}, e)
}

// ExecutorFrom returns the executor stored in ctx, or Driver() if none is.
func ExecutorFrom(ctx context.Context) Executor {
	if e, ok := ctx.Value(executorKey{}).(Executor); ok {
		return e
	}
	return Driver()
}
