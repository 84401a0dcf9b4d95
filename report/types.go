package report

import (
	"time"

	"github.com/fatih/color"
	"github.com/utkarsh5026/overlap/workload"
)

// Stats summarizes the elapsed samples of a strategy run more than once.
type Stats struct {
	Min  time.Duration `json:"min"`
	Mean time.Duration `json:"mean"`
	P50  time.Duration `json:"p50"`
	P95  time.Duration `json:"p95"`
	Max  time.Duration `json:"max"`
}

// Result is the measurement of one strategy.
type Result struct {
	Strategy    string          `json:"strategy"`
	Description string          `json:"description"`
	Elapsed     time.Duration   `json:"elapsed"` // median when iterations > 1
	Samples     []time.Duration `json:"samples"`
	Stats       Stats           `json:"stats"`
	Units       int             `json:"units"`
	SumBound    time.Duration   `json:"sum_bound"` // sequential bound
	MaxBound    time.Duration   `json:"max_bound"` // fully-overlapped bound
	Rank        int             `json:"rank"`
}

// ElapsedSeconds is the elapsed time in whole seconds, truncated.
func (r Result) ElapsedSeconds() int64 {
	return int64(r.Elapsed / time.Second)
}

// Sink receives the narration of a harness run. Implementations must be
// safe for concurrent use: unit notices arrive from many goroutines.
type Sink interface {
	workload.Observer

	// StrategyStarted is called before the first iteration of a strategy.
	StrategyStarted(name, description string)

	// IterationFinished is called as soon as the elapsed time of one
	// iteration has been read, before any outstanding work is drained.
	IterationFinished(name string, iteration int, elapsed time.Duration)

	// StrategyFinished is called once all iterations of a strategy are done.
	StrategyFinished(r Result)
}

// Color helpers
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
	Cyan   = color.New(color.FgCyan)
)
