/*
PURPOSE:
  Defines the core data structures used throughout Burst Analyzer.
  A Record is one parsed results_burst_*.txt file; a Dataset is the sorted,
  filtered list of records for one analysis run.

REQUIREMENTS:
  User-specified:
  - burst_size (int) and avg_throughput (float) are mandatory.
  - test_duration (int) is optional.
  - Every other key is kept as free text.

  Implementation-discovered:
  - Typed fields need presence flags; zero is a valid measurement.
  - CSV export needs to know which free-form fields exist at all.

ARCHITECTURE INTEGRATION:
  - Produced by: internal/dataset
  - Used by: internal/analysis, internal/output, internal/engine

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Records are never mutated after loading.

USAGE:
  ds := model.Dataset{rec1, rec2}
  keys := ds.BurstSizes()

RELATED FILES:
  - internal/dataset/parser.go
  - internal/output/csv.go

MAINTENANCE:
  - Update field name constants if the harness output format changes.
*/

package model

import (
	"strconv"
)

// Field names written by the benchmark harness.
const (
	FieldBurstSize  = "burst_size"
	FieldThroughput = "avg_throughput"
	FieldDuration   = "test_duration"
	FieldTimestamp  = "timestamp"
)

// Record represents the content of a single results file.
type Record struct {
	Source string

	BurstSize    int
	HasBurstSize bool

	Throughput    float64
	HasThroughput bool

	Duration    int
	HasDuration bool

	// Fields holds every key that has no enforced type.
	Fields map[string]string
}

// Usable reports whether the record carries both mandatory fields.
func (r Record) Usable() bool {
	return r.HasBurstSize && r.HasThroughput
}

// Field returns the value of name rendered as text, typed fields included.
func (r Record) Field(name string) (string, bool) {
	switch name {
	case FieldBurstSize:
		if !r.HasBurstSize {
			return "", false
		}
		return strconv.Itoa(r.BurstSize), true
	case FieldThroughput:
		if !r.HasThroughput {
			return "", false
		}
		return strconv.FormatFloat(r.Throughput, 'f', -1, 64), true
	case FieldDuration:
		if !r.HasDuration {
			return "", false
		}
		return strconv.Itoa(r.Duration), true
	}
	v, ok := r.Fields[name]
	return v, ok
}

// Dataset is the ordered collection of accepted records, ascending by burst size.
type Dataset []Record

// BurstSizes returns the burst sizes in dataset order.
func (d Dataset) BurstSizes() []int {
	out := make([]int, len(d))
	for i, r := range d {
		out[i] = r.BurstSize
	}
	return out
}

// Throughputs returns the throughput values in dataset order.
func (d Dataset) Throughputs() []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.Throughput
	}
	return out
}

// Has reports whether at least one record carries the named field.
func (d Dataset) Has(name string) bool {
	for _, r := range d {
		if _, ok := r.Field(name); ok {
			return true
		}
	}
	return false
}
