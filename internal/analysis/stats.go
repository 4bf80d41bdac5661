/*
PURPOSE:
  Computes the descriptive aggregates shared by the graph, report, CSV and
  JSON outputs.

REQUIREMENTS:
  User-specified:
  - Max, min and mean throughput, with the burst sizes holding max and min.
  - Improvement ratio max/min, efficiency relative to the maximum.
  - Top-N configurations and configurations above an efficiency threshold.

  Implementation-discovered:
  - Max/min ties resolve to the first record in dataset order.
  - TopN sorts a copy; the caller's dataset order is never changed.

ARCHITECTURE INTEGRATION:
  - Called by: internal/output (graph, report, csv, json)
  - Consumes: internal/model.Dataset

ERROR HANDLING:
  - ErrEmptyDataset, ErrZeroMinimum and ErrNonPositiveMax are returned where
    an aggregate is undefined.

USAGE:
  sum, err := analysis.Summarize(ds)
*/

package analysis

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/daryltucker/burst-analyzer/internal/model"
)

var (
	ErrEmptyDataset   = errors.New("empty dataset")
	ErrZeroMinimum    = errors.New("minimum throughput is zero, improvement ratio is undefined")
	ErrNonPositiveMax = errors.New("maximum throughput is not positive")
)

// Summary holds the aggregate statistics of a dataset.
type Summary struct {
	Count int
	Max   float64
	Min   float64
	Mean  float64

	// BestIndex and WorstIndex point at the first record holding Max and Min.
	BestIndex  int
	WorstIndex int
	BestBurst  int
	WorstBurst int
}

// Summarize computes the aggregates of ds.
func Summarize(ds model.Dataset) (Summary, error) {
	if len(ds) == 0 {
		return Summary{}, ErrEmptyDataset
	}
	values := ds.Throughputs()
	best := floats.MaxIdx(values)
	worst := floats.MinIdx(values)
	return Summary{
		Count:      len(ds),
		Max:        values[best],
		Min:        values[worst],
		Mean:       stat.Mean(values, nil),
		BestIndex:  best,
		WorstIndex: worst,
		BestBurst:  ds[best].BurstSize,
		WorstBurst: ds[worst].BurstSize,
	}, nil
}

// Improvement returns Max/Min.
func (s Summary) Improvement() (float64, error) {
	if s.Min == 0 {
		return 0, ErrZeroMinimum
	}
	return s.Max / s.Min, nil
}

// Efficiency returns value as a percentage of max.
func Efficiency(value, max float64) float64 {
	return value / max * 100
}

// Efficiencies returns the efficiency of every record in dataset order.
func Efficiencies(ds model.Dataset) ([]float64, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}
	values := ds.Throughputs()
	max := floats.Max(values)
	if max <= 0 {
		return nil, ErrNonPositiveMax
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Efficiency(v, max)
	}
	return out, nil
}

// TopN returns up to n records ordered by descending throughput. Records
// with equal throughput keep dataset order.
func TopN(ds model.Dataset, n int) model.Dataset {
	sorted := make(model.Dataset, len(ds))
	copy(sorted, ds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Throughput > sorted[j].Throughput
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// AboveEfficiency returns the records whose throughput is strictly greater
// than threshold*max, in dataset order.
func AboveEfficiency(ds model.Dataset, max, threshold float64) model.Dataset {
	var out model.Dataset
	for _, r := range ds {
		if r.Throughput/max > threshold {
			out = append(out, r)
		}
	}
	return out
}
