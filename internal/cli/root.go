/*
PURPOSE:
  Defines the root Cobra command for the Burst Analyzer CLI.
  The root command is the analysis itself: burst-analyzer <results_dir>.

REQUIREMENTS:
  User-specified:
  - Positional results directory.
  - -o/--output, --no-graphs, --no-report, --csv-only.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Commands are built by a constructor so tests get fresh flag state.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/burst-analyzer/main.go
  - Calls: internal/engine.Run() (see run.go)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Cobra's own error printing is silenced; main prints once.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/burst-analyzer/main.go
  - internal/cli/run.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/burst-analyzer/internal/output"
)

// Execute executes the root command.
func Execute() error {
	return newRootCmd(output.SystemViewer{}).Execute()
}

func newRootCmd(viewer output.Viewer) *cobra.Command {
	opts := &runOptions{viewer: viewer}

	cmd := &cobra.Command{
		Use:   "burst-analyzer <results_dir>",
		Short: "Analyze DPDK burst size benchmark results",
		Long: `Reads results_burst_*.txt files written by the packet throughput benchmark,
then writes a throughput graph (PNG and PDF), a detailed text report and a CSV
export into the output directory (default: <results_dir>/analysis).`,
		Example: `  # Full analysis
  burst-analyzer ./results

  # Write outputs elsewhere, skip the graph
  burst-analyzer ./results -o ./analysis --no-graphs

  # Only the CSV export
  burst-analyzer ./results --csv-only`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./burst_analyzer.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	opts.bindFlags(cmd)

	return cmd
}
