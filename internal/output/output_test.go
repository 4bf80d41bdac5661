package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/burst-analyzer/internal/analysis"
	"github.com/daryltucker/burst-analyzer/internal/model"
)

func TestMain(m *testing.M) {
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func rec(burst int, tp float64) model.Record {
	return model.Record{
		BurstSize: burst, HasBurstSize: true,
		Throughput: tp, HasThroughput: true,
		Fields: map[string]string{},
	}
}

func twoPointDataset() model.Dataset {
	return model.Dataset{rec(1, 1e6), rec(32, 5e6)}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCSV_TwoPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark_data.csv")

	require.NoError(t, ExportCSV(twoPointDataset(), path))

	rows := readCSV(t, path)
	require.Equal(t, [][]string{
		{"burst_size", "avg_throughput", "throughput_mpps", "efficiency_percent"},
		{"1", "1000000.0", "1.0", "20.0"},
		{"32", "5000000.0", "5.0", "100.0"},
	}, rows)
}

func TestExportCSV_RoundsHalvesToEven(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, ExportCSV(model.Dataset{rec(1, 1e6), rec(2, 12500), rec(4, 7500), rec(32, 5e6)}, path))

	rows := readCSV(t, path)
	require.Equal(t, []string{"2", "12500.0", "0.012", "0.2"}, rows[2])
	require.Equal(t, []string{"4", "7500.0", "0.008", "0.2"}, rows[3])
}

func TestExportCSV_OptionalColumnsAndExtraFields(t *testing.T) {
	a := rec(4, 1234567)
	a.Duration, a.HasDuration = 30, true
	a.Fields["ring_type"] = "spsc"
	b := rec(8, 2469134)
	b.Fields["timestamp"] = "2024-01-02 10:11:12"
	b.Fields["host"] = "lab-1"
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, ExportCSV(model.Dataset{a, b}, path))

	rows := readCSV(t, path)
	require.Equal(t, []string{"burst_size", "avg_throughput", "throughput_mpps", "efficiency_percent", "test_duration", "timestamp"}, rows[0])
	require.Equal(t, []string{"4", "1234567.0", "1.235", "50.0", "30", ""}, rows[1])
	require.Equal(t, []string{"8", "2469134.0", "2.469", "100.0", "", "2024-01-02 10:11:12"}, rows[2])
}

func TestExportCSV_HeaderIsOrderedSubset(t *testing.T) {
	r := rec(2, 10)
	r.Fields["zeta"] = "1"
	r.Fields["alpha"] = "2"
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, ExportCSV(model.Dataset{r}, path))

	header := readCSV(t, path)[0]
	pos := -1
	for _, col := range header {
		idx := indexOf(CSVColumns, col)
		require.GreaterOrEqual(t, idx, 0, "unexpected column %q", col)
		require.Greater(t, idx, pos)
		pos = idx
	}
}

func TestExportCSV_EmptyDatasetWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ExportCSV(nil, path))
	require.NoFileExists(t, path)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "20.0", formatFloat(20))
	assert.Equal(t, "1.235", formatFloat(1.235))
	assert.Equal(t, "0.0", formatFloat(0))
	assert.Equal(t, "-3.0", formatFloat(-3))
}

func fixedReport(dir string) *ReportWriter {
	rw := NewReportWriter(dir, "")
	rw.Now = func() time.Time { return time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC) }
	return rw
}

func readReport(t *testing.T, rw *ReportWriter) string {
	t.Helper()
	data, err := os.ReadFile(rw.Path)
	require.NoError(t, err)
	return string(data)
}

func TestReportWriter_TwoPoints(t *testing.T) {
	rw := fixedReport(t.TempDir())

	require.NoError(t, rw.Write(twoPointDataset()))

	report := readReport(t, rw)
	for _, want := range []string{
		"=== DETAILED BENCHMARK ANALYSIS ===\nGenerated: 2024-03-04 05:06:07\nTotal test configurations: 2\n",
		"Maximum throughput: 5,000,000 packets/sec (burst size 32)\n",
		"Minimum throughput: 1,000,000 packets/sec (burst size 1)\n",
		"Average throughput: 3,000,000 packets/sec\n",
		"Performance range: 5.00x improvement from worst to best\n",
		"Burst Size   Throughput      Relative Perf   Notes               \n",
		"1            1,000,000          20.0%        WORST POOR          \n",
		"32           5,000,000         100.0%        BEST EXCELLENT      \n",
		"Top 3 performing burst sizes:\n  1. Burst size 32: 5,000,000 packets/sec\n  2. Burst size 1: 1,000,000 packets/sec\n",
		"- Low latency applications: Consider burst sizes 1-16\n- Balanced applications: Use burst size 32 or lower\n",
		"- Best overall performance: Burst size 32\n",
		"Configurations achieving >90% efficiency: 1\n  - Burst size 32: 100.0% efficiency\n",
	} {
		require.Contains(t, report, want)
	}
	require.Less(t, strings.Index(report, "PERFORMANCE SUMMARY"), strings.Index(report, "DETAILED RESULTS"))
	require.Less(t, strings.Index(report, "DETAILED RESULTS"), strings.Index(report, "RECOMMENDATIONS"))
	require.Less(t, strings.Index(report, "RECOMMENDATIONS"), strings.Index(report, "EFFICIENCY ANALYSIS"))
}

func TestReportWriter_LargeBestBurst(t *testing.T) {
	rw := fixedReport(t.TempDir())
	ds := model.Dataset{rec(1, 1e6), rec(16, 2e6), rec(64, 4.5e6), rec(128, 5e6), rec(256, 4.6e6)}

	require.NoError(t, rw.Write(ds))

	report := readReport(t, rw)
	require.Contains(t, report, "- High throughput applications: Use larger burst sizes (64-256)\n")
	require.Contains(t, report, "- Low latency applications: Consider smaller burst sizes (1-32)\n")
	require.Contains(t, report, "- Best overall performance: Burst size 128\n")
	// top list is by throughput, not by key
	require.Contains(t, report, "  1. Burst size 128: 5,000,000 packets/sec\n  2. Burst size 256: 4,600,000 packets/sec\n  3. Burst size 64: 4,500,000 packets/sec\n")
	require.NotContains(t, report, "  4. ")
	// 64 sits at exactly 90%, which is not strictly above the threshold
	require.Contains(t, report, "Configurations achieving >90% efficiency: 2\n")
	require.NotContains(t, report, "Burst size 64: 90.0% efficiency")
}

func TestReportWriter_TagsFollowThroughputValues(t *testing.T) {
	rw := fixedReport(t.TempDir())
	ds := model.Dataset{rec(1, 2e6), rec(2, 2e6), rec(4, 1.3e6), rec(8, 2e6)}

	require.NoError(t, rw.Write(ds))

	rows := tableRows(readReport(t, rw))
	require.Len(t, rows, 4)
	for _, i := range []int{0, 1, 3} {
		assert.Contains(t, rows[i], "BEST EXCELLENT")
		assert.NotContains(t, rows[i], "WORST")
	}
	// 65% gets no rating
	assert.True(t, strings.HasSuffix(strings.TrimSpace(rows[2]), "WORST"), rows[2])
}

func TestReportWriter_AllEqual(t *testing.T) {
	rw := fixedReport(t.TempDir())
	ds := model.Dataset{rec(8, 3e6), rec(16, 3e6)}

	require.NoError(t, rw.Write(ds))

	report := readReport(t, rw)
	require.Contains(t, report, "Performance range: 1.00x improvement")
	for _, row := range tableRows(report) {
		require.Contains(t, row, "BEST WORST EXCELLENT")
	}
}

func TestReportWriter_ZeroMinimum(t *testing.T) {
	rw := fixedReport(t.TempDir())

	err := rw.Write(model.Dataset{rec(1, 0), rec(2, 5)})
	require.ErrorIs(t, err, analysis.ErrZeroMinimum)
	require.NoFileExists(t, rw.Path)
}

func TestReportWriter_EmptyDataset(t *testing.T) {
	rw := fixedReport(t.TempDir())
	require.NoError(t, rw.Write(nil))
	require.NoFileExists(t, rw.Path)
}

// tableRows returns the data rows of the DETAILED RESULTS table.
func tableRows(report string) []string {
	lines := strings.Split(report, "\n")
	var rows []string
	in := false
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "------------"):
			in = true
		case in && l == "":
			return rows
		case in:
			rows = append(rows, l)
		}
	}
	return rows
}

type recordingViewer struct {
	opened []string
}

func (v *recordingViewer) Open(path string) error {
	v.opened = append(v.opened, path)
	return ErrNoDisplay
}

func smallGraph(dir string) *GraphWriter {
	gw := NewGraphWriter(dir)
	gw.DPI = 50
	return gw
}

func TestGraphWriter_WritesPNGAndPDF(t *testing.T) {
	gw := smallGraph(t.TempDir())
	viewer := &recordingViewer{}
	gw.Viewer = viewer
	ds := model.Dataset{rec(1, 1e6), rec(2, 1.8e6), rec(4, 3e6), rec(32, 5e6), rec(256, 4.2e6)}

	require.NoError(t, gw.Write(ds))

	png, err := os.ReadFile(gw.PNGPath())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	pdf, err := os.ReadFile(gw.PDFPath())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	// viewer failures are not errors
	require.Equal(t, []string{gw.PNGPath()}, viewer.opened)
}

func TestGraphWriter_SinglePoint(t *testing.T) {
	gw := smallGraph(t.TempDir())
	require.NoError(t, gw.Write(model.Dataset{rec(1, 1e6)}))
	require.FileExists(t, gw.PNGPath())
	require.FileExists(t, gw.PDFPath())
}

func TestGraphWriter_ZeroBurstFallsBackToLinearAxis(t *testing.T) {
	gw := smallGraph(t.TempDir())
	require.NoError(t, gw.Write(model.Dataset{rec(0, 1e5), rec(4, 1e6)}))
	require.FileExists(t, gw.PNGPath())
}

func TestGraphWriter_NonPositiveMax(t *testing.T) {
	gw := smallGraph(t.TempDir())
	err := gw.Write(model.Dataset{rec(1, 0)})
	require.ErrorIs(t, err, analysis.ErrNonPositiveMax)
	require.NoFileExists(t, gw.PNGPath())
}

func TestGraphWriter_EmptyDataset(t *testing.T) {
	gw := smallGraph(t.TempDir())
	require.NoError(t, gw.Write(nil))
	require.NoFileExists(t, gw.PNGPath())
}

func TestWriteJSONSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultJSONFile)

	require.NoError(t, WriteJSONSummary(twoPointDataset(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc JSONSummary
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, 2, doc.Count)
	require.Equal(t, 32, doc.BestBurstSize)
	require.Equal(t, 1, doc.WorstBurstSize)
	require.InDelta(t, 5.0, doc.Improvement, 1e-9)
	require.Len(t, doc.Results, 2)
	require.Equal(t, 20.0, doc.Results[0].EfficiencyPercent)
	require.Equal(t, []analysis.Tag{analysis.TagWorst, analysis.TagPoor}, doc.Results[0].Tags)
	require.Equal(t, []analysis.Tag{analysis.TagBest, analysis.TagExcellent}, doc.Results[1].Tags)
}
