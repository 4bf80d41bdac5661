/*
PURPOSE:
  Classifies rows of the detailed results table.

REQUIREMENTS:
  User-specified:
  - BEST/WORST mark the maximum and minimum throughput.
  - EXCELLENT above 95%, GOOD above 80%, POOR below 50% of the maximum.

  Implementation-discovered:
  - Tags follow values, so tied records all get BEST or WORST.

ARCHITECTURE INTEGRATION:
  - Called by: internal/output/report.go, internal/output/json.go

USAGE:
  notes := analysis.Notes(analysis.Classify(r.Throughput, sum))
*/

package analysis

import (
	"strings"
)

// Tag marks a row of the detailed results table.
type Tag string

const (
	TagBest      Tag = "BEST"
	TagWorst     Tag = "WORST"
	TagExcellent Tag = "EXCELLENT"
	TagGood      Tag = "GOOD"
	TagPoor      Tag = "POOR"
)

// Rating thresholds, in percent of the maximum. Values on a boundary and
// values between poorBelow and goodAbove get no rating.
const (
	excellentAbove = 95
	goodAbove      = 80
	poorBelow      = 50
)

// Rate returns the performance rating for a relative performance percentage.
func Rate(relative float64) (Tag, bool) {
	switch {
	case relative > excellentAbove:
		return TagExcellent, true
	case relative > goodAbove:
		return TagGood, true
	case relative < poorBelow:
		return TagPoor, true
	}
	return "", false
}

// Classify returns the tags of a record with the given throughput.
func Classify(throughput float64, s Summary) []Tag {
	var tags []Tag
	if throughput == s.Max {
		tags = append(tags, TagBest)
	}
	if throughput == s.Min {
		tags = append(tags, TagWorst)
	}
	if t, ok := Rate(Efficiency(throughput, s.Max)); ok {
		tags = append(tags, t)
	}
	return tags
}

// Notes renders tags the way the report's Notes column shows them: each tag
// followed by a space.
func Notes(tags []Tag) string {
	var b strings.Builder
	for _, t := range tags {
		b.WriteString(string(t))
		b.WriteByte(' ')
	}
	return b.String()
}
