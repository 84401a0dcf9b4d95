package main

import (
	"flag"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/utkarsh5026/overlap/strategy"
)

const minDefaultWorkers = 4

var outputFormats = []string{"table", "json", "log"}

// Flags holds the command-line configuration.
type Flags struct {
	Strategy       string
	Workers        int
	Iterations     int
	Warmup         int
	Scale          float64
	Rate           float64
	Burst          int
	Pin            bool
	IncludeAwaited bool
	Pause          time.Duration
	OutputFormat   string
	LogFile        string
	LogLevel       string
	NoWait         bool
}

// DefineFlags defines every flag on fs (but doesn't parse yet).
func DefineFlags(fs *flag.FlagSet) *Flags {
	flags := &Flags{}

	fs.StringVar(&flags.Strategy, "strategy", "", "Run a single strategy: "+fmt.Sprint(strategyNames(true)))
	fs.IntVar(&flags.Workers, "workers", 0, fmt.Sprintf("Shared pool and parallel-for workers (0 = max(GOMAXPROCS, %d))", minDefaultWorkers))
	fs.IntVar(&flags.Iterations, "iterations", 1, "Measured runs per strategy")
	fs.IntVar(&flags.Warmup, "warmup", 0, "Unmeasured runs per strategy")
	fs.Float64Var(&flags.Scale, "scale", 1.0, "Multiply every unit duration by this factor")
	fs.Float64Var(&flags.Rate, "rate", 0, "Max job starts per second on the shared pool (0 = unlimited)")
	fs.IntVar(&flags.Burst, "burst", 1, "Burst allowed by -rate")
	fs.BoolVar(&flags.Pin, "pin", false, "Pin dedicated threads and pool workers to CPU cores")
	fs.BoolVar(&flags.IncludeAwaited, "include-awaited", false, "Also run the async strategy that awaits its combinator")
	fs.DurationVar(&flags.Pause, "pause", 0, "Idle time between strategies")
	fs.StringVar(&flags.OutputFormat, "output-format", "table", "Output format: 'table', 'json' or 'log'")
	fs.StringVar(&flags.LogFile, "log-file", "", "Also write structured narration to this file (rotated)")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "Structured log level: debug, info, warn, error")
	fs.BoolVar(&flags.NoWait, "no-wait", false, "Exit without waiting for a key press")

	return flags
}

// Validate checks flag values that the flag package cannot.
func (f *Flags) Validate() error {
	if f.Strategy != "" && !slices.Contains(strategyNames(true), f.Strategy) {
		return fmt.Errorf("unknown strategy %q", f.Strategy)
	}
	if !slices.Contains(outputFormats, f.OutputFormat) {
		return fmt.Errorf("unknown output format %q", f.OutputFormat)
	}
	if f.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", f.Iterations)
	}
	if f.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", f.Warmup)
	}
	if f.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", f.Scale)
	}
	if f.Pause < 0 {
		return fmt.Errorf("pause must not be negative, got %v", f.Pause)
	}
	if f.Rate < 0 || (f.Rate > 0 && f.Burst < 1) {
		return fmt.Errorf("invalid rate limit %v/s with burst %d", f.Rate, f.Burst)
	}
	return nil
}

// WorkerCount resolves the -workers default.
func (f *Flags) WorkerCount() int {
	if f.Workers > 0 {
		return f.Workers
	}
	return max(runtime.GOMAXPROCS(0), minDefaultWorkers)
}

func strategyNames(all bool) []string {
	names := []string{
		strategy.NameSequential,
		strategy.NameParallelFor,
		strategy.NameWorkerPool,
		strategy.NameAsyncFireAndForget,
		strategy.NameThreads,
	}
	if all {
		names = append(names, strategy.NameAsyncAwait)
	}
	return names
}
