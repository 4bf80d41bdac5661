/*
PURPOSE:
  Defines the configuration structure and loading logic for Burst Analyzer.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Output directory override.
  - Which outputs to generate.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variables overrides (BURST_ANALYZER_...).
  - Report thresholds and graph size are tunable without a rebuild.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, github.com/caarlos0/env/v11

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config files fall back to defaults.

IMPLEMENTATION RULES:
  - Precedence: defaults < file < environment < CLI flags.

USAGE:
  cfg, err := config.Load("burst_analyzer.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go
*/

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BURST_ANALYZER_"

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"burst_analyzer.yaml", "burst-analyzer.yaml"}

// Config represents the full configuration for Burst Analyzer.
type Config struct {
	// OutputDir defaults to <results_dir>/analysis when empty.
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR"`
	Pattern   string `yaml:"pattern" env:"PATTERN"`

	GraphBasename string `yaml:"graph_basename" env:"GRAPH_BASENAME"`
	ReportFile    string `yaml:"report_file" env:"REPORT_FILE"`
	CSVFile       string `yaml:"csv_file" env:"CSV_FILE"`
	JSONFile      string `yaml:"json_file" env:"JSON_FILE"`

	Graphs      bool `yaml:"graphs" env:"GRAPHS"`
	Report      bool `yaml:"report" env:"REPORT"`
	CSVOnly     bool `yaml:"csv_only" env:"CSV_ONLY"`
	JSONSummary bool `yaml:"json_summary" env:"JSON_SUMMARY"`
	Show        bool `yaml:"show" env:"SHOW"`

	DPI      int     `yaml:"dpi" env:"DPI"`
	WidthIn  float64 `yaml:"width_in" env:"WIDTH_IN"`
	HeightIn float64 `yaml:"height_in" env:"HEIGHT_IN"`

	TopN                int     `yaml:"top_n" env:"TOP_N"`
	LatencyCutoff       int     `yaml:"latency_cutoff" env:"LATENCY_CUTOFF"`
	EfficiencyThreshold float64 `yaml:"efficiency_threshold" env:"EFFICIENCY_THRESHOLD"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pattern:             "results_burst_*.txt",
		GraphBasename:       "throughput_analysis",
		ReportFile:          "detailed_analysis.txt",
		CSVFile:             "benchmark_data.csv",
		JSONFile:            "analysis_summary.json",
		Graphs:              true,
		Report:              true,
		Show:                true,
		DPI:                 300,
		WidthIn:             12,
		HeightIn:            8,
		TopN:                3,
		LatencyCutoff:       32,
		EfficiencyThreshold: 0.9,
	}
}

// Load reads configuration from a file, then applies environment overrides.
// If path is empty, the DefaultFiles are tried in order; if none exists the
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	return cfg, nil
}

// Validate checks the tunables for values the outputs cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Pattern == "" {
		errs = append(errs, errors.New("pattern must not be empty"))
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %d", c.DPI))
	}
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		errs = append(errs, fmt.Errorf("graph size must be positive, got %vx%v", c.WidthIn, c.HeightIn))
	}
	if c.TopN < 1 {
		errs = append(errs, fmt.Errorf("top_n must be at least 1, got %d", c.TopN))
	}
	if c.EfficiencyThreshold <= 0 || c.EfficiencyThreshold > 1 {
		errs = append(errs, fmt.Errorf("efficiency_threshold must be in (0, 1], got %v", c.EfficiencyThreshold))
	}
	return errors.Join(errs...)
}
