/*
PURPOSE:
  Discovers the results files in a directory and builds the dataset.

REQUIREMENTS:
  User-specified:
  - Only files matching results_burst_*.txt are read, non-recursively.
  - Records without burst_size or avg_throughput are dropped.
  - The dataset is ordered by burst size ascending.

  Implementation-discovered:
  - Records sharing a burst size keep file-name order (stable sort over
    Glob's lexical order).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Calls: ParseFile (parser.go)

ERROR HANDLING:
  - Unparseable files are logged at WARN and skipped.
  - Only a malformed pattern is returned as an error; an empty result is
    the caller's decision.

USAGE:
  ds, err := dataset.Load("results", dataset.DefaultPattern)
*/

package dataset

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/daryltucker/burst-analyzer/internal/model"
	"github.com/daryltucker/burst-analyzer/internal/output"
)

// DefaultPattern matches the files written by the benchmark harness.
const DefaultPattern = "results_burst_*.txt"

// Load parses every file in dir matching pattern and returns the usable
// records sorted by burst size. Files that fail to parse are logged and
// skipped. Glob returns names in lexical order, so records sharing a burst
// size keep file-name order.
func Load(dir, pattern string) (model.Dataset, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid results pattern %q: %w", pattern, err)
	}

	var ds model.Dataset
	for _, path := range files {
		rec, err := ParseFile(path)
		if err != nil {
			output.Logger.Warn("Skipping results file", "file", path, "error", err)
			continue
		}
		if !rec.Usable() {
			output.Logger.Debug("Skipping results file without burst_size/avg_throughput", "file", path)
			continue
		}
		ds = append(ds, rec)
	}

	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].BurstSize < ds[j].BurstSize
	})
	return ds, nil
}
