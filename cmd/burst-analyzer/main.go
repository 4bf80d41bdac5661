/*
PURPOSE:
  Entry point for the Burst Analyzer application.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Exit status 1 with a message when the results directory is missing or
    no usable results were found.

  Implementation-discovered:
  - Uses cobra for CLI command management.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o burst-analyzer ./cmd/burst-analyzer
  ./burst-analyzer <results_dir> [flags]

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/burst-analyzer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
