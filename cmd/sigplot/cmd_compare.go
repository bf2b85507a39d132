package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/e-pet/plot-signals/src/sigplot"
)

func newCompareCmd() *cobra.Command {
	flags := &plotFlags{}
	cmd := &cobra.Command{
		Use:   "compare <a.csv> <b.csv> [more.csv...]",
		Short: "Overlay several same-shaped matrices channel by channel",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			sets := make([]mat.Matrix, len(args))
			for i, path := range args {
				m, err := loadMatrix(path)
				if err != nil {
					return err
				}
				sets[i] = m
			}
			fig, subs, err := sigplot.CompareSignals(sets, cfg)
			if err != nil {
				return err
			}
			if err := writeFigure(fig, flags); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d subplots, %d sets overlaid)\n", flags.out, len(subs), len(sets))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.matLabels, "mat-labels", "", "Comma-separated legend names for the compared sets")
	return cmd
}
