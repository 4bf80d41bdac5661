/*
PURPOSE:
  Writes the human-readable analysis report (detailed_analysis.txt).

REQUIREMENTS:
  User-specified:
  - Summary (max/min/mean, best/worst burst size, improvement ratio).
  - Fixed-width per-record table with BEST/WORST and rating notes.
  - Top performers, burst size recommendation, >90% efficiency list.

  Implementation-discovered:
  - Thousands separators come from a locale printer, not hand formatting.
  - The clock is injectable so the header is testable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/analysis

ERROR HANDLING:
  - Returns analysis errors (zero minimum) before the file is created.
  - Returns file write errors.

USAGE:
  rw := output.NewReportWriter(dir, "detailed_analysis.txt")
  err := rw.Write(ds)
*/

package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daryltucker/burst-analyzer/internal/analysis"
	"github.com/daryltucker/burst-analyzer/internal/model"
)

const (
	DefaultReportFile    = "detailed_analysis.txt"
	DefaultTopN          = 3
	DefaultLatencyCutoff = 32
	DefaultEffThreshold  = 0.9
)

// ReportWriter renders the detailed analysis report.
type ReportWriter struct {
	Path string

	TopN                int
	LatencyCutoff       int
	EfficiencyThreshold float64

	Now func() time.Time
}

// NewReportWriter returns a ReportWriter with the default thresholds.
func NewReportWriter(dir, name string) *ReportWriter {
	if name == "" {
		name = DefaultReportFile
	}
	return &ReportWriter{
		Path:                filepath.Join(dir, name),
		TopN:                DefaultTopN,
		LatencyCutoff:       DefaultLatencyCutoff,
		EfficiencyThreshold: DefaultEffThreshold,
		Now:                 time.Now,
	}
}

// Write renders the report for ds to rw.Path.
func (rw *ReportWriter) Write(ds model.Dataset) error {
	if len(ds) == 0 {
		Logger.Info("No data available for analysis")
		return nil
	}

	summary, err := analysis.Summarize(ds)
	if err != nil {
		return err
	}
	ratio, err := summary.Improvement()
	if err != nil {
		return err
	}

	f, err := os.Create(rw.Path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	rw.render(bw, ds, summary, ratio)
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	Logger.Info("Detailed analysis saved", "path", rw.Path)
	return nil
}

func (rw *ReportWriter) render(w io.Writer, ds model.Dataset, s analysis.Summary, ratio float64) {
	p := message.NewPrinter(language.English)
	now := time.Now
	if rw.Now != nil {
		now = rw.Now
	}

	fmt.Fprintln(w, "=== DETAILED BENCHMARK ANALYSIS ===")
	fmt.Fprintf(w, "Generated: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Total test configurations: %d\n\n", s.Count)

	fmt.Fprintln(w, "=== PERFORMANCE SUMMARY ===")
	fmt.Fprintf(w, "Maximum throughput: %s packets/sec (burst size %d)\n", grouped(p, s.Max), s.BestBurst)
	fmt.Fprintf(w, "Minimum throughput: %s packets/sec (burst size %d)\n", grouped(p, s.Min), s.WorstBurst)
	fmt.Fprintf(w, "Average throughput: %s packets/sec\n", grouped(p, s.Mean))
	fmt.Fprintf(w, "Performance range: %.2fx improvement from worst to best\n\n", ratio)

	fmt.Fprintln(w, "=== DETAILED RESULTS ===")
	fmt.Fprintf(w, "%-12s %-15s %-15s %-20s\n", "Burst Size", "Throughput", "Relative Perf", "Notes")
	fmt.Fprintf(w, "%-12s %-15s %-15s %-20s\n",
		strings.Repeat("-", 12), strings.Repeat("-", 15), strings.Repeat("-", 15), strings.Repeat("-", 20))
	for _, r := range ds {
		rel := analysis.Efficiency(r.Throughput, s.Max)
		notes := analysis.Notes(analysis.Classify(r.Throughput, s))
		fmt.Fprintf(w, "%-12d %s%7s %6.1f%%%7s %-20s\n", r.BurstSize, grouped(p, r.Throughput), "", rel, "", notes)
	}

	fmt.Fprintln(w, "\n=== RECOMMENDATIONS ===")
	top := rw.TopN
	if top < 1 {
		top = DefaultTopN
	}
	fmt.Fprintf(w, "Top %d performing burst sizes:\n", top)
	for i, r := range analysis.TopN(ds, top) {
		fmt.Fprintf(w, "  %d. Burst size %d: %s packets/sec\n", i+1, r.BurstSize, grouped(p, r.Throughput))
	}

	fmt.Fprintln(w, "\nOptimal burst size selection:")
	if s.BestBurst <= rw.LatencyCutoff {
		fmt.Fprintln(w, "- Low latency applications: Consider burst sizes 1-16")
		fmt.Fprintf(w, "- Balanced applications: Use burst size %d or lower\n", rw.LatencyCutoff)
	} else {
		fmt.Fprintln(w, "- High throughput applications: Use larger burst sizes (64-256)")
		fmt.Fprintf(w, "- Low latency applications: Consider smaller burst sizes (1-%d)\n", rw.LatencyCutoff)
	}
	fmt.Fprintf(w, "- Best overall performance: Burst size %d\n", s.BestBurst)

	fmt.Fprintln(w, "\n=== EFFICIENCY ANALYSIS ===")
	efficient := analysis.AboveEfficiency(ds, s.Max, rw.EfficiencyThreshold)
	fmt.Fprintf(w, "Configurations achieving >%.0f%% efficiency: %d\n", rw.EfficiencyThreshold*100, len(efficient))
	for _, r := range efficient {
		fmt.Fprintf(w, "  - Burst size %d: %.1f%% efficiency\n", r.BurstSize, analysis.Efficiency(r.Throughput, s.Max))
	}
}

// grouped formats v rounded to an integer with thousands separators.
func grouped(p *message.Printer, v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) >= math.MaxInt64 {
		return fmt.Sprintf("%.0f", v)
	}
	return p.Sprintf("%d", int64(math.RoundToEven(v)))
}
