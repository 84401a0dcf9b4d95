package report

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// MakeProgressBar returns a bar advancing once per strategy, written to w.
func MakeProgressBar(w io.Writer, strategies int) *progressbar.ProgressBar {
	return progressbar.NewOptions(strategies,
		progressbar.OptionSetDescription("Running strategies"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// ProgressSink advances a progress bar as strategies finish. It ignores
// every other notice.
type ProgressSink struct {
	discard
	bar *progressbar.ProgressBar
}

// NewProgressSink wraps bar.
func NewProgressSink(bar *progressbar.ProgressBar) *ProgressSink {
	return &ProgressSink{bar: bar}
}

func (p *ProgressSink) StrategyStarted(name, _ string) {
	p.bar.Describe("Running: " + name)
}

func (p *ProgressSink) StrategyFinished(Result) {
	_ = p.bar.Add(1)
}

// Finish completes the bar.
func (p *ProgressSink) Finish() {
	_ = p.bar.Finish()
}
