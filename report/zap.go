package report

import (
	"time"

	"github.com/utkarsh5026/overlap/workload"
	"go.uber.org/zap"
)

// ZapSink narrates a run as structured log entries.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink logs narration to logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{log: logger}
}

func (z *ZapSink) StrategyStarted(name, description string) {
	z.log.Info("strategy started",
		zap.String("strategy", name),
		zap.String("description", description),
	)
}

func (z *ZapSink) UnitStarted(e workload.Executor, u workload.Unit) {
	z.log.Info("unit started", unitFields(e, u)...)
}

func (z *ZapSink) UnitDone(e workload.Executor, u workload.Unit, took time.Duration) {
	z.log.Info("unit done", append(unitFields(e, u), zap.Duration("took", took))...)
}

func (z *ZapSink) IterationFinished(name string, iteration int, elapsed time.Duration) {
	z.log.Info("iteration finished",
		zap.String("strategy", name),
		zap.Int("iteration", iteration),
		zap.Duration("elapsed", elapsed),
		zap.Int64("elapsed_seconds", int64(elapsed/time.Second)),
	)
}

func (z *ZapSink) StrategyFinished(r Result) {
	z.log.Info("strategy finished",
		zap.String("strategy", r.Strategy),
		zap.Duration("elapsed", r.Elapsed),
		zap.Int("units", r.Units),
		zap.Durations("samples", r.Samples),
		zap.Duration("sum_bound", r.SumBound),
		zap.Duration("max_bound", r.MaxBound),
	)
}

func unitFields(e workload.Executor, u workload.Unit) []zap.Field {
	return []zap.Field{
		zap.Stringer("executor", e),
		zap.Stringer("kind", u.Kind),
		zap.String("label", u.Label),
		zap.Duration("duration", u.Duration),
	}
}
