// sigplot renders multi-channel signal matrices (CSV) as subplot-grid plots.
//
// Two modes:
//  1. plot: one matrix, one subplot per channel.
//  2. compare: several same-shaped matrices overlaid channel by channel.
//
// Output format follows the --out extension: .png uses the go-chart raster
// backend, .svg and .pdf go through the gonum/plot vector exporter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/e-pet/plot-signals/src/sigplot"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "sigplot",
		Short: "Arrange multi-signal plots as subplot grids",
		Long: `sigplot wraps the plot-signals library: it loads numeric matrices from
CSV files and lays their channels out as a grid of subplots, with optional
overlays, markers, vertical lines, log scaling and axis linking.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, _ := cmd.Flags().GetString("log-level")
			sigplot.SetLogLevel(lvl)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostics level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newPlotCmd(),
		newCompareCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
