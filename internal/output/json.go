/*
PURPOSE:
  Writes a machine-readable summary of the analysis (analysis_summary.json).

REQUIREMENTS:
  Implementation-discovered:
  - Same numbers as the text report so dashboards don't have to scrape it.
  - Per-record tags mirror the report's Notes column.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (when json_summary is enabled)
  - Uses: internal/analysis

ERROR HANDLING:
  - Returns analysis errors and file write errors.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.

USAGE:
  err := output.WriteJSONSummary(ds, "analysis/analysis_summary.json")
*/

package output

import (
	"encoding/json"
	"os"

	"github.com/daryltucker/burst-analyzer/internal/analysis"
	"github.com/daryltucker/burst-analyzer/internal/model"
)

const DefaultJSONFile = "analysis_summary.json"

// JSONSummary is the document written by WriteJSONSummary.
type JSONSummary struct {
	Count          int               `json:"count"`
	MaxThroughput  float64           `json:"max_throughput"`
	MinThroughput  float64           `json:"min_throughput"`
	MeanThroughput float64           `json:"mean_throughput"`
	BestBurstSize  int               `json:"best_burst_size"`
	WorstBurstSize int               `json:"worst_burst_size"`
	Improvement    float64           `json:"improvement_ratio,omitempty"`
	Results        []JSONSummaryItem `json:"results"`
}

// JSONSummaryItem describes one record.
type JSONSummaryItem struct {
	Source            string         `json:"source"`
	BurstSize         int            `json:"burst_size"`
	Throughput        float64        `json:"avg_throughput"`
	EfficiencyPercent float64        `json:"efficiency_percent"`
	Tags              []analysis.Tag `json:"tags,omitempty"`
}

// BuildJSONSummary computes the summary document for ds.
func BuildJSONSummary(ds model.Dataset) (JSONSummary, error) {
	s, err := analysis.Summarize(ds)
	if err != nil {
		return JSONSummary{}, err
	}
	effs, err := analysis.Efficiencies(ds)
	if err != nil {
		return JSONSummary{}, err
	}

	doc := JSONSummary{
		Count:          s.Count,
		MaxThroughput:  s.Max,
		MinThroughput:  s.Min,
		MeanThroughput: s.Mean,
		BestBurstSize:  s.BestBurst,
		WorstBurstSize: s.WorstBurst,
		Results:        make([]JSONSummaryItem, len(ds)),
	}
	// a zero minimum leaves the ratio out
	if ratio, err := s.Improvement(); err == nil {
		doc.Improvement = ratio
	}
	for i, r := range ds {
		doc.Results[i] = JSONSummaryItem{
			Source:            r.Source,
			BurstSize:         r.BurstSize,
			Throughput:        r.Throughput,
			EfficiencyPercent: round(effs[i], 1),
			Tags:              analysis.Classify(r.Throughput, s),
		}
	}
	return doc, nil
}

// WriteJSONSummary writes the summary of ds to path.
func WriteJSONSummary(ds model.Dataset, path string) error {
	doc, err := BuildJSONSummary(ds)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	Logger.Info("JSON summary saved", "path", path)
	return nil
}
