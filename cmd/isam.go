package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/expcharts/analysis"
	"github.com/inference-sim/expcharts/analysis/isam"
	"github.com/inference-sim/expcharts/analysis/render"
	"github.com/inference-sim/expcharts/analysis/report"
)

var isamInputs []string // Result files; several are concatenated

var isamCmd = &cobra.Command{
	Use:   "isam",
	Short: "Chart ISAM reorganization cost against the reorganization threshold",
	Long: "Read isam_experiments.txt (ALPHA THRESHOLD REORGS REORG_READS REORG_WRITES TOTAL_READS TOTAL_WRITES) and write " +
		"combined reorganization and write-cost charts plus, per alpha, read and write trade-off charts.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
		applyGlobalFlags(&cfg, cmd.Flags().Changed)
		if cmd.Flags().Changed("input") {
			cfg.ISAM.Inputs = isamInputs
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		if _, err := runISAM(cfg, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func loadISAMResults(paths []string) ([]isam.Result, error) {
	var all []isam.Result
	for _, path := range paths {
		results, err := isam.Load(path)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("loaded %d ISAM runs from %s", len(results), path)
		all = append(all, results...)
	}
	return all, nil
}

// runISAM loads the inputs, writes every chart and returns the paths
// written. Nothing is written when loading fails.
func runISAM(cfg Config, stdout io.Writer) ([]string, error) {
	results, err := loadISAMResults(cfg.ISAM.Inputs)
	if err != nil {
		return nil, err
	}
	groups := isam.GroupByAlpha(results)
	alphas := make([]string, len(groups))
	for i, a := range analysis.Keys(groups) {
		alphas[i] = isam.AlphaLabel(a)
	}
	logrus.Infof("Found data for Alpha: %v", alphas)

	paths, err := writeFigures(render.NewWriter(cfg.OutputDir, cfg.DPI), isam.Figures(groups))
	if err != nil {
		return paths, err
	}
	logrus.Info("Finished generating charts.")

	if cfg.Summary {
		report.WriteISAM(stdout, groups)
	}
	return paths, nil
}

func init() {
	isamCmd.Flags().StringArrayVar(&isamInputs, "input", []string{isam.DefaultInput}, "ISAM experiments file (can be repeated)")

	rootCmd.AddCommand(isamCmd)
}
