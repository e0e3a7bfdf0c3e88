package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/expcharts/analysis/render"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Optional YAML config file
	outputDir  string // Directory the PNG files are written to
	dpi        int    // Output resolution
	summary    bool   // Print per-group summary tables after rendering
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "expcharts",
	Short: "Render comparison charts from external sort and ISAM experiment results",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// writeFigures renders figs in order and logs each file written.
func writeFigures(w *render.Writer, figs []render.Figure) ([]string, error) {
	paths, err := w.WriteAll(figs)
	for _, path := range paths {
		logrus.Infof("Generated: %s", path)
	}
	if err != nil {
		return paths, fmt.Errorf("writing charts: %w", err)
	}
	return paths, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", defaultOutputDir, "Directory for the generated PNG charts")
	rootCmd.PersistentFlags().IntVar(&dpi, "dpi", defaultDPI, "Resolution of the generated charts")
	rootCmd.PersistentFlags().BoolVar(&summary, "summary", false, "Print a per-group summary table to stdout")
}
