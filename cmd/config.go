package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/expcharts/analysis/isam"
	"github.com/inference-sim/expcharts/analysis/render"
	"github.com/inference-sim/expcharts/analysis/sorting"
)

const (
	defaultOutputDir = "charts"
	defaultDPI       = render.DefaultDPI
)

// Config represents the full config file structure.
// Unknown keys are rejected so typos surface instead of being ignored.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	DPI       int           `yaml:"dpi"`
	Summary   bool          `yaml:"summary"`
	Sorting   SortingConfig `yaml:"sorting"`
	ISAM      ISAMConfig    `yaml:"isam"`
}

// SortingConfig configures the external sort charts.
type SortingConfig struct {
	Inputs    []string `yaml:"inputs"`
	BlockSize int      `yaml:"block_size"` // records per block in the sort harness
}

// ISAMConfig configures the ISAM charts.
type ISAMConfig struct {
	Inputs []string `yaml:"inputs"`
}

// DefaultConfig mirrors the harness defaults: result files in the working
// directory, charts/ output, blocking factor 10, 300 dpi.
func DefaultConfig() Config {
	return Config{
		OutputDir: defaultOutputDir,
		DPI:       defaultDPI,
		Sorting:   SortingConfig{Inputs: []string{sorting.DefaultInput}, BlockSize: sorting.DefaultBlockSize},
		ISAM:      ISAMConfig{Inputs: []string{isam.DefaultInput}},
	}
}

// LoadConfig parses path on top of DefaultConfig. Keys absent from the file
// keep their defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.Sorting.BlockSize <= 0 {
		return fmt.Errorf("sorting.block_size must be positive, got %d", c.Sorting.BlockSize)
	}
	if len(c.Sorting.Inputs) == 0 {
		return fmt.Errorf("sorting.inputs must name at least one file")
	}
	if len(c.ISAM.Inputs) == 0 {
		return fmt.Errorf("isam.inputs must name at least one file")
	}
	return nil
}

// applyGlobalFlags copies explicitly set persistent flags over cfg. Flags left
// at their defaults never override values from the config file.
func applyGlobalFlags(cfg *Config, changed func(name string) bool) {
	if changed("out") {
		cfg.OutputDir = outputDir
	}
	if changed("dpi") {
		cfg.DPI = dpi
	}
	if changed("summary") {
		cfg.Summary = summary
	}
}
