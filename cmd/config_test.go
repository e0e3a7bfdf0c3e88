package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expcharts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPath_ReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, 10, cfg.Sorting.BlockSize)
	assert.Equal(t, []string{"sorting_results.txt"}, cfg.Sorting.Inputs)
	assert.Equal(t, []string{"isam_experiments.txt"}, cfg.ISAM.Inputs)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_PartialFile_KeepsOtherDefaults(t *testing.T) {
	// GIVEN a config that only sets the block size and one input
	path := writeTempYAML(t, `
sorting:
  block_size: 32
  inputs: [run1.txt, run2.txt]
`)

	// WHEN loaded
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN the given keys are applied and the rest keep their defaults
	assert.Equal(t, 32, cfg.Sorting.BlockSize)
	assert.Equal(t, []string{"run1.txt", "run2.txt"}, cfg.Sorting.Inputs)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, []string{"isam_experiments.txt"}, cfg.ISAM.Inputs)
}

func TestLoadConfig_EmptyFile_ReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeTempYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownKey_IsRejected(t *testing.T) {
	// GIVEN a typo in a key
	path := writeTempYAML(t, "sorting:\n  blocksize: 32\n")

	// THEN loading fails instead of silently ignoring it
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocksize")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"zero dpi", func(c *Config) { c.DPI = 0 }},
		{"negative block size", func(c *Config) { c.Sorting.BlockSize = -1 }},
		{"no sorting inputs", func(c *Config) { c.Sorting.Inputs = nil }},
		{"no isam inputs", func(c *Config) { c.ISAM.Inputs = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyGlobalFlags_OnlyChangedFlagsOverride(t *testing.T) {
	// GIVEN a config file value and flag variables holding their defaults plus one explicit value
	cfg := DefaultConfig()
	cfg.OutputDir = "from-file"
	cfg.DPI = 150

	outputDir, dpi, summary = "charts", 72, true
	t.Cleanup(func() { outputDir, dpi, summary = defaultOutputDir, defaultDPI, false })

	// WHEN only --dpi and --summary were passed on the command line
	changed := map[string]bool{"dpi": true, "summary": true}
	applyGlobalFlags(&cfg, func(name string) bool { return changed[name] })

	// THEN the file's output dir survives and the explicit flags win
	assert.Equal(t, "from-file", cfg.OutputDir)
	assert.Equal(t, 72, cfg.DPI)
	assert.True(t, cfg.Summary)
}
