/*
PURPOSE:
  Flags and execution of the analysis command.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Engine.Run.
  - Flags only override the config when explicitly set.

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/runner.go
*/

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/daryltucker/burst-analyzer/internal/config"
	"github.com/daryltucker/burst-analyzer/internal/engine"
	"github.com/daryltucker/burst-analyzer/internal/output"
)

type runOptions struct {
	cfgFile string
	verbose bool

	outputDir string
	noGraphs  bool
	noReport  bool
	csvOnly   bool
	json      bool
	noShow    bool

	viewer output.Viewer
}

func (o *runOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.outputDir, "output", "o", "", "Output directory for analysis (default <results_dir>/analysis)")
	cmd.Flags().BoolVar(&o.noGraphs, "no-graphs", false, "Skip graph generation")
	cmd.Flags().BoolVar(&o.noReport, "no-report", false, "Skip detailed report generation")
	cmd.Flags().BoolVar(&o.csvOnly, "csv-only", false, "Only generate CSV export")
	cmd.Flags().BoolVar(&o.json, "json", false, "Also write a JSON summary")
	cmd.Flags().BoolVar(&o.noShow, "no-show", false, "Never open the graph in a viewer")
}

func (o *runOptions) run(cmd *cobra.Command, resultsDir string) error {
	if o.verbose {
		output.SetLevel(slog.LevelDebug)
	}

	// 1. Load Config
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	// 2. Overrides
	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}
	if o.noGraphs {
		cfg.Graphs = false
	}
	if o.noReport {
		cfg.Report = false
	}
	if o.csvOnly {
		cfg.CSVOnly = true
	}
	if o.json {
		cfg.JSONSummary = true
	}
	if o.noShow {
		cfg.Show = false
	}

	// 3. Execution
	return engine.RunWithViewer(cfg, resultsDir, o.viewer)
}
