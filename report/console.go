package report

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/utkarsh5026/overlap/workload"
)

// ConsoleSink narrates a run as colored, human-readable text.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink writes narration to w, or to stdout when w is nil.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

func (c *ConsoleSink) printf(col *color.Color, format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = col.Fprintf(c.w, format, a...)
}

func (c *ConsoleSink) StrategyStarted(name, description string) {
	c.printf(Bold, "\n\n %s [%s]\n", description, name)
}

func (c *ConsoleSink) UnitStarted(e workload.Executor, u workload.Unit) {
	verb := "Downloading file"
	if u.Kind == workload.KindWrite {
		verb = "Writing file"
	}
	c.printf(Blue, "Thread: %s %s %s... \n", e, verb, u.Label)
}

func (c *ConsoleSink) UnitDone(e workload.Executor, u workload.Unit, took time.Duration) {
	c.printf(Green, "Done. (%s, %s, %s)\n", u.Label, e, took.Round(time.Millisecond))
}

func (c *ConsoleSink) IterationFinished(name string, iteration int, elapsed time.Duration) {
	c.printf(Yellow, "Total time(s) %d\n", int64(elapsed/time.Second))
}

func (c *ConsoleSink) StrategyFinished(r Result) {
	if len(r.Samples) > 1 {
		c.printf(Cyan, "  %d iterations: min %s, p50 %s, max %s\n",
			len(r.Samples), FormatLatency(r.Stats.Min), FormatLatency(r.Stats.P50), FormatLatency(r.Stats.Max))
	}
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) UnitStarted(workload.Executor, workload.Unit)             {}
func (discard) UnitDone(workload.Executor, workload.Unit, time.Duration) {}
func (discard) StrategyStarted(string, string)                           {}
func (discard) IterationFinished(string, int, time.Duration)             {}
func (discard) StrategyFinished(Result)                                  {}

// Multi fans every notice out to all sinks, in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) UnitStarted(e workload.Executor, u workload.Unit) {
	for _, s := range m {
		s.UnitStarted(e, u)
	}
}

func (m multiSink) UnitDone(e workload.Executor, u workload.Unit, took time.Duration) {
	for _, s := range m {
		s.UnitDone(e, u, took)
	}
}

func (m multiSink) StrategyStarted(name, description string) {
	for _, s := range m {
		s.StrategyStarted(name, description)
	}
}

func (m multiSink) IterationFinished(name string, iteration int, elapsed time.Duration) {
	for _, s := range m {
		s.IterationFinished(name, iteration, elapsed)
	}
}

func (m multiSink) StrategyFinished(r Result) {
	for _, s := range m {
		s.StrategyFinished(r)
	}
}

// PrintHeader prints the boxed title the CLI starts with.
func PrintHeader(w io.Writer, title string) {
	_, _ = Bold.Fprintln(w, "╔════════════════════════════════════════════════════════════╗")
	_, _ = Bold.Fprintf(w, "║       %-52s ║\n", title)
	_, _ = Bold.Fprintln(w, "╚════════════════════════════════════════════════════════════╝")
	_, _ = fmt.Fprintln(w)
}
