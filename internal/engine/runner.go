/*
PURPOSE:
  High-level runner that orchestrates one analysis run.
  Loads the dataset once, then hands it to each enabled output.

REQUIREMENTS:
  User-specified:
  - Missing results directory or an empty dataset are fatal.
  - Graph and report failures are logged and do not stop the CSV export.
  - --csv-only runs the exporter alone.

  Implementation-discovered:
  - The output directory is created only once there is data to write.
  - Stage order is fixed (graph, report, JSON, CSV) so logs read the same
    on every run.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/dataset, internal/output

ERROR HANDLING:
  - Returns ErrResultsDirNotFound / ErrNoData (wrapped) for fatal conditions.
  - Logs errors of optional stages but continues (resilience).
  - Returns CSV export errors.

USAGE:
  engine.Run(cfg, "results/")
*/

package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/daryltucker/burst-analyzer/internal/config"
	"github.com/daryltucker/burst-analyzer/internal/dataset"
	"github.com/daryltucker/burst-analyzer/internal/model"
	"github.com/daryltucker/burst-analyzer/internal/output"
)

var (
	ErrResultsDirNotFound = errors.New("results directory not found")
	ErrNoData             = errors.New("no valid benchmark data found")
)

// DefaultOutputSubdir is used below the results directory when no output
// directory is configured.
const DefaultOutputSubdir = "analysis"

// Run analyzes the results in resultsDir according to cfg.
func Run(cfg *config.Config, resultsDir string) error {
	return RunWithViewer(cfg, resultsDir, output.SystemViewer{})
}

// RunWithViewer is Run with an explicit graph viewer. A nil viewer never
// displays the graph.
func RunWithViewer(cfg *config.Config, resultsDir string, viewer output.Viewer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fi, err := os.Stat(resultsDir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrResultsDirNotFound, resultsDir)
	}

	outDir := OutputDir(cfg, resultsDir)
	output.Logger.Info("Analyzing results", "results_dir", resultsDir, "output_dir", outDir)

	ds, err := dataset.Load(resultsDir, cfg.Pattern)
	if err != nil {
		return err
	}
	if len(ds) == 0 {
		return ErrNoData
	}
	output.Logger.Info("Found test results", "count", len(ds))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	if !cfg.CSVOnly {
		if cfg.Graphs {
			if err := writeGraph(cfg, ds, outDir, viewer); err != nil {
				output.Logger.Error("Error generating graphs", "error", err)
			}
		}
		if cfg.Report {
			if err := writeReport(cfg, ds, outDir); err != nil {
				output.Logger.Error("Error generating report", "error", err)
			}
		}
		if cfg.JSONSummary {
			if err := output.WriteJSONSummary(ds, filepath.Join(outDir, cfg.JSONFile)); err != nil {
				output.Logger.Error("Error writing JSON summary", "error", err)
			}
		}
	}

	csvPath := filepath.Join(outDir, cfg.CSVFile)
	if err := output.ExportCSV(ds, csvPath); err != nil {
		return fmt.Errorf("failed to export CSV to %s: %w", csvPath, err)
	}

	output.Logger.Info("Analysis complete")
	return nil
}

// OutputDir resolves where the outputs for resultsDir are written.
func OutputDir(cfg *config.Config, resultsDir string) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return filepath.Join(resultsDir, DefaultOutputSubdir)
}

func writeGraph(cfg *config.Config, ds model.Dataset, outDir string, viewer output.Viewer) error {
	gw := output.NewGraphWriter(outDir)
	gw.Basename = cfg.GraphBasename
	gw.DPI = cfg.DPI
	gw.Width = vg.Length(cfg.WidthIn) * vg.Inch
	gw.Height = vg.Length(cfg.HeightIn) * vg.Inch
	if cfg.Show {
		gw.Viewer = viewer
	}
	return gw.Write(ds)
}

func writeReport(cfg *config.Config, ds model.Dataset, outDir string) error {
	rw := output.NewReportWriter(outDir, cfg.ReportFile)
	rw.TopN = cfg.TopN
	rw.LatencyCutoff = cfg.LatencyCutoff
	rw.EfficiencyThreshold = cfg.EfficiencyThreshold
	return rw.Write(ds)
}
