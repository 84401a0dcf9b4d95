// Command overlap runs the same blocking workloads under several concurrency
// strategies and reports how long each strategy takes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/utkarsh5026/overlap/harness"
	"github.com/utkarsh5026/overlap/internal/logger"
	"github.com/utkarsh5026/overlap/pool"
	"github.com/utkarsh5026/overlap/report"
	"github.com/utkarsh5026/overlap/workload"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("overlap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := DefineFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := flags.Validate(); err != nil {
		_, _ = report.Red.Fprintf(stderr, "✗ %v\n", err)
		return 2
	}

	if err := execute(flags, stdout, stderr); err != nil {
		_, _ = report.Red.Fprintf(stderr, "✗ %v\n", err)
		return 1
	}

	if !flags.NoWait {
		waitForKey(stdin, stdout)
	}
	return 0
}

func execute(flags *Flags, stdout, stderr io.Writer) error {
	ctx := context.Background()

	sink, finish, closeLog := buildSink(flags, stdout, stderr)
	defer func() { _ = closeLog.Close() }()

	sched := pool.NewScheduler(schedulerOptions(flags)...)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start shared pool: %w", err)
	}

	sim := workload.NewSimulator(workload.WithObserver(sink))
	steps := buildSteps(flags, sim, sched)

	if flags.OutputFormat == "table" {
		report.PrintHeader(stdout, "Blocking Workload Strategy Comparison")
		_, _ = report.Bold.Fprintf(stdout, "🚀 Running %d strategies with %d workers\n", len(steps), sched.WorkerCount())
	}

	driver := harness.NewDriver(
		harness.WithSink(sink),
		harness.WithIterations(flags.Iterations),
		harness.WithWarmup(flags.Warmup),
		harness.WithPause(flags.Pause),
	)
	results := driver.Run(ctx, steps)
	finish()

	if err := sched.Shutdown(10 * time.Second); err != nil {
		return fmt.Errorf("failed to stop shared pool: %w", err)
	}

	switch flags.OutputFormat {
	case "json":
		return report.WriteJSON(stdout, results)
	case "table":
		if err := report.RenderTable(stdout, results); err != nil {
			return fmt.Errorf("failed to render results: %w", err)
		}
		_, _ = report.Green.Fprintf(stdout, "\n✅ Ran %d strategies\n", len(results))
	}
	return nil
}

func schedulerOptions(flags *Flags) []pool.WorkerPoolOption {
	opts := []pool.WorkerPoolOption{pool.WithWorkerCount(flags.WorkerCount())}
	if flags.Rate > 0 {
		opts = append(opts, pool.WithRateLimit(flags.Rate, flags.Burst))
	}
	if flags.Pin {
		opts = append(opts, pool.WithPinnedWorkers())
	}
	return opts
}

// buildSink wires narration for the chosen output format. finish must be
// called once the run is over.
func buildSink(flags *Flags, stdout, stderr io.Writer) (report.Sink, func(), io.Closer) {
	var (
		sinks       []report.Sink
		finishSteps = func() {}
	)

	logCfg := logger.Config{
		Level:      flags.LogLevel,
		Format:     "json",
		FilePath:   flags.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if flags.OutputFormat == "log" {
		logCfg.Writer = stdout
	}
	log, closer := logger.New(logCfg)
	if logCfg.Writer != nil || logCfg.FilePath != "" {
		sinks = append(sinks, report.NewZapSink(log))
	}

	if flags.OutputFormat == "table" {
		progress := report.NewProgressSink(report.MakeProgressBar(stderr, countSteps(flags)))
		sinks = append(sinks, report.NewConsoleSink(stdout), progress)
		finishSteps = progress.Finish
	}

	finish := func() {
		finishSteps()
		_ = log.Sync()
	}
	return report.Multi(sinks...), finish, closer
}
