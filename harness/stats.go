package harness

import (
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/utkarsh5026/overlap/report"
)

const (
	histMin     = 1                 // 1µs
	histMax     = 10 * 60 * 1000000 // 10 minutes in µs
	histSigFigs = 3
)

// calculateStats summarizes elapsed samples with microsecond resolution.
func calculateStats(samples []time.Duration) report.Stats {
	if len(samples) == 0 {
		return report.Stats{}
	}

	h := hdrhistogram.New(histMin, histMax, histSigFigs)
	for _, s := range samples {
		_ = h.RecordValue(max(s.Microseconds(), histMin))
	}

	us := func(v int64) time.Duration { return time.Duration(v) * time.Microsecond }
	return report.Stats{
		Min:  us(h.Min()),
		Mean: time.Duration(h.Mean() * float64(time.Microsecond)),
		P50:  us(h.ValueAtQuantile(50)),
		P95:  us(h.ValueAtQuantile(95)),
		Max:  us(h.Max()),
	}
}

// median returns the middle sample; for an even count, the lower of the two
// middle samples, so the result is always a measured value.
func median(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2]
}
