package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daryltucker/burst-analyzer/internal/model"
)

func TestRate(t *testing.T) {
	tests := []struct {
		relative float64
		want     Tag
		ok       bool
	}{
		{100, TagExcellent, true},
		{95.1, TagExcellent, true},
		{95, TagGood, true},
		{80.5, TagGood, true},
		{80, "", false},
		{65, "", false},
		{50, "", false},
		{49.9, TagPoor, true},
		{0, TagPoor, true},
	}
	for _, tt := range tests {
		got, ok := Rate(tt.relative)
		require.Equal(t, tt.ok, ok, "relative %v", tt.relative)
		require.Equal(t, tt.want, got, "relative %v", tt.relative)
	}
}

func TestClassify_BestAndWorstFollowValues(t *testing.T) {
	ds := model.Dataset{rec(1, 1e6), rec(2, 5e6), rec(2, 1e6), rec(4, 5e6), rec(8, 3e6)}
	s, err := Summarize(ds)
	require.NoError(t, err)

	var best, worst []int
	for i, r := range ds {
		for _, tag := range Classify(r.Throughput, s) {
			switch tag {
			case TagBest:
				best = append(best, i)
			case TagWorst:
				worst = append(worst, i)
			}
		}
	}
	require.Equal(t, []int{1, 3}, best)
	require.Equal(t, []int{0, 2}, worst)
}

func TestClassify_SingleRecordIsBestAndWorst(t *testing.T) {
	s, err := Summarize(model.Dataset{rec(64, 2e6)})
	require.NoError(t, err)

	tags := Classify(2e6, s)
	require.Equal(t, []Tag{TagBest, TagWorst, TagExcellent}, tags)
	require.Equal(t, "BEST WORST EXCELLENT ", Notes(tags))
}

func TestNotes_Empty(t *testing.T) {
	require.Equal(t, "", Notes(nil))
}
