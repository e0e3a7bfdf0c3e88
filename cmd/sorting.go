package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/expcharts/analysis"
	"github.com/inference-sim/expcharts/analysis/render"
	"github.com/inference-sim/expcharts/analysis/report"
	"github.com/inference-sim/expcharts/analysis/sorting"
)

var (
	sortingInputs    []string // Result files; several are concatenated
	sortingBlockSize int      // Records per block used by the sort harness
)

var sortingCmd = &cobra.Command{
	Use:   "sorting",
	Short: "Chart external sort phases and disk operations against theory",
	Long: "Read sorting_results.txt (BUFFER_NUM RECORD_NUM PHASES READ_COUNT WRITE_COUNT) and write, per buffer size, " +
		"phases and disk-operation charts with theoretical curves, plus one combined comparison chart.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
		applyGlobalFlags(&cfg, cmd.Flags().Changed)
		if cmd.Flags().Changed("input") {
			cfg.Sorting.Inputs = sortingInputs
		}
		if cmd.Flags().Changed("block-size") {
			cfg.Sorting.BlockSize = sortingBlockSize
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		if _, err := runSorting(cfg, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// loadSortResults reads and concatenates every input file.
func loadSortResults(paths []string) ([]sorting.Result, error) {
	var all []sorting.Result
	for _, path := range paths {
		results, err := sorting.Load(path)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("loaded %d sort runs from %s", len(results), path)
		all = append(all, results...)
	}
	return all, nil
}

// runSorting loads the inputs, writes every chart and returns the paths
// written. Nothing is written when loading fails.
func runSorting(cfg Config, stdout io.Writer) ([]string, error) {
	results, err := loadSortResults(cfg.Sorting.Inputs)
	if err != nil {
		return nil, err
	}
	groups := sorting.GroupByBuffer(results)
	logrus.Infof("Found data for buffer sizes: %v", analysis.Keys(groups))

	paths, err := writeFigures(render.NewWriter(cfg.OutputDir, cfg.DPI), sorting.Figures(groups, cfg.Sorting.BlockSize))
	if err != nil {
		return paths, err
	}
	logrus.Infof("Generated charts for buffer sizes: %v", analysis.Keys(groups))
	logrus.Infof("Charts saved to '%s/' directory", cfg.OutputDir)

	if cfg.Summary {
		report.WriteSorting(stdout, groups, cfg.Sorting.BlockSize)
	}
	return paths, nil
}

func init() {
	sortingCmd.Flags().StringArrayVar(&sortingInputs, "input", []string{sorting.DefaultInput}, "Sort results file (can be repeated)")
	sortingCmd.Flags().IntVar(&sortingBlockSize, "block-size", sorting.DefaultBlockSize, "Records per block (blocking factor b)")

	rootCmd.AddCommand(sortingCmd)
}
