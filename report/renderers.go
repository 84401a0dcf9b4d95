package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Rank orders results fastest first and assigns ranks. The input is not modified.
func Rank(results []Result) []Result {
	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, func(a, b Result) int {
		return cmp.Compare(a.Elapsed, b.Elapsed)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RenderTable writes the comparison table of results to w.
func RenderTable(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return nil
	}

	printSectionHeader(w, "STRATEGY COMPARISON",
		"Elapsed wall-clock time per strategy (lower is better)",
		"  • Sum: time if every unit ran one after another",
		"  • Max: time if every unit overlapped perfectly")

	table := tablewriter.NewWriter(w)
	table.Header("Rank", "Strategy", "Units", "Elapsed", "Seconds", "Sum", "Max", "vs Sum")

	for _, r := range Rank(results) {
		_ = table.Append(
			getRankIcon(r.Rank),
			r.Strategy,
			fmt.Sprintf("%d", r.Units),
			r.Elapsed.Round(time.Millisecond).String(),
			fmt.Sprintf("%d", r.ElapsedSeconds()),
			r.SumBound.String(),
			r.MaxBound.String(),
			getVsSumStr(r.Elapsed, r.SumBound),
		)
	}

	return table.Render()
}

// WriteJSON writes results, in run order, as an indented JSON document.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Results []Result `json:"results"`
	}{Results: results})
}

func getRankIcon(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// getVsSumStr reports elapsed as a fraction of the sequential bound.
func getVsSumStr(elapsed, sum time.Duration) string {
	if sum <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(elapsed)/float64(sum))
}

func printSectionHeader(w io.Writer, title string, descriptions ...string) {
	_, _ = fmt.Fprintln(w)
	_, _ = Bold.Fprintln(w, "═══════════════════════════════════════════════════════════")
	_, _ = Bold.Fprintln(w, title)
	_, _ = Bold.Fprintln(w, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		_, _ = fmt.Fprintln(w, desc)
	}
	_, _ = fmt.Fprintln(w)
}

// FormatLatency formats a duration in the most appropriate unit
func FormatLatency(d time.Duration) string {
	if d == 0 {
		return "0"
	}

	ns := d.Nanoseconds()

	if ns < 1000 {
		return fmt.Sprintf("%dns", ns)
	}

	if ns < 1_000_000 {
		us := float64(ns) / 1000.0
		if us == float64(int(us)) {
			return fmt.Sprintf("%dµs", int(us))
		}
		return fmt.Sprintf("%.1fµs", us)
	}

	if ns < 1_000_000_000 {
		ms := float64(ns) / 1_000_000.0
		if ms == float64(int(ms)) {
			return fmt.Sprintf("%dms", int(ms))
		}
		return fmt.Sprintf("%.2fms", ms)
	}

	s := float64(ns) / 1_000_000_000.0
	return fmt.Sprintf("%.2fs", s)
}
