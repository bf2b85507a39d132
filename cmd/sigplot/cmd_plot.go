package main

import (
	"fmt"
	"image"
	png "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/e-pet/plot-signals/src/signal"
	"github.com/e-pet/plot-signals/src/sigplot"
	"github.com/e-pet/plot-signals/src/vecexport"
)

func newPlotCmd() *cobra.Command {
	flags := &plotFlags{}
	cmd := &cobra.Command{
		Use:   "plot <matrix.csv>",
		Short: "Plot one matrix, one subplot per channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			sm, err := signal.Detect(m)
			if err != nil {
				return err
			}
			fig, subs, err := sigplot.PlotSignals(sm, cfg)
			if err != nil {
				return err
			}
			if err := writeFigure(fig, flags); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d subplots, %dx%d grid)\n", flags.out, len(subs), fig.Rows, fig.Cols)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// writeFigure picks the backend by output extension: PNG goes through the
// raster renderer, SVG/PDF through the vector exporter.
func writeFigure(fig *sigplot.Figure, flags *plotFlags) error {
	switch strings.ToLower(filepath.Ext(flags.out)) {
	case ".png":
		if flags.tileWidth > 0 {
			img, err := fig.RenderSize(flags.tileWidth)
			if err != nil {
				return err
			}
			return savePNGImage(img, flags.out)
		}
		return fig.SavePNG(flags.out)
	case ".svg", ".pdf":
		w := vg.Length(fig.Cols) * 5 * vg.Inch
		h := vg.Length(fig.Rows) * 3 * vg.Inch
		return vecexport.Save(fig, flags.out, w, h)
	default:
		return fmt.Errorf("unsupported output extension on %q (want .png, .svg or .pdf)", flags.out)
	}
}

func savePNGImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
