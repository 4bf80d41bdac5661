/*
PURPOSE:
  Exports the loaded dataset to CSV for further analysis (spreadsheets, pandas).

REQUIREMENTS:
  User-specified:
  - Fixed column order: burst_size, avg_throughput, throughput_mpps,
    efficiency_percent, test_duration, timestamp.
  - efficiency_percent rounded to 1 decimal, throughput_mpps to 3, halves
    to even.

  Implementation-discovered:
  - Columns no record carries are dropped; free-form fields outside the
    fixed list are never exported.
  - Floats keep at least one decimal ("20.0") so downstream tools read them
    as floats.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Dataset

ERROR HANDLING:
  - Returns error on file creation or write failure.
  - Empty dataset is a no-op.

IMPLEMENTATION RULES:
  - Use encoding/csv.

USAGE:
  err := output.ExportCSV(ds, "analysis/benchmark_data.csv")
*/

package output

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/daryltucker/burst-analyzer/internal/model"
)

// Derived columns.
const (
	ColumnMpps       = "throughput_mpps"
	ColumnEfficiency = "efficiency_percent"
)

// CSVColumns is the preferred column order of the export.
var CSVColumns = []string{
	model.FieldBurstSize,
	model.FieldThroughput,
	ColumnMpps,
	ColumnEfficiency,
	model.FieldDuration,
	model.FieldTimestamp,
}

// ExportCSV writes ds to path. It does nothing for an empty dataset.
func ExportCSV(ds model.Dataset, path string) error {
	if len(ds) == 0 {
		return nil
	}

	header := csvHeader(ds)
	maxTP := floats.Max(ds.Throughputs())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, r := range ds {
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = csvCell(r, col, maxTP)
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	Logger.Info("CSV data exported", "path", path)
	return nil
}

func csvHeader(ds model.Dataset) []string {
	var header []string
	for _, col := range CSVColumns {
		switch col {
		case ColumnMpps, ColumnEfficiency:
			if ds.Has(model.FieldThroughput) {
				header = append(header, col)
			}
		default:
			if ds.Has(col) {
				header = append(header, col)
			}
		}
	}
	return header
}

func csvCell(r model.Record, col string, maxTP float64) string {
	switch col {
	case model.FieldThroughput:
		return formatFloat(r.Throughput)
	case ColumnMpps:
		return formatFloat(round(r.Throughput/1_000_000, 3))
	case ColumnEfficiency:
		if maxTP <= 0 {
			return ""
		}
		return formatFloat(round(r.Throughput/maxTP*100, 1))
	}
	// Integer fields are written as read, even when some rows lack them.
	v, _ := r.Field(col)
	return v
}

// round rounds half to even, so 0.0125 becomes 0.012.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}

// formatFloat renders v in its shortest form, keeping a decimal point.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}
