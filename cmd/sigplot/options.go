package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/e-pet/plot-signals/src/sigplot"
)

// plotFlags binds the option surface shared by the plot and compare commands.
type plotFlags struct {
	out         string
	specFile    string
	tileWidth   int
	cols        int
	columnMajor bool
	logy        string
	link        string
	title       string
	figTitle    string
	xlabel      string
	labels      string
	labelBase   string
	linespec    string
	vlines      string
	vlineLabels string
	matLabels   string
}

func (f *plotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", "signals.png", "Output file (.png, .svg or .pdf)")
	cmd.Flags().StringVar(&f.specFile, "spec", "", "YAML option file (flags override it)")
	cmd.Flags().IntVar(&f.tileWidth, "tile-width", 0, "Subplot tile width in pixels (0 = default)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "Subplot column count (default 1)")
	cmd.Flags().BoolVar(&f.columnMajor, "column-major", false, "Fill the grid column by column")
	cmd.Flags().StringVar(&f.logy, "logy", "", "Comma-separated 0-based channel indices drawn log-scaled")
	cmd.Flags().StringVar(&f.link, "link", "none", "Axis linking across subplots (none|x|y|xy)")
	cmd.Flags().StringVar(&f.title, "title", "", "Plot title (figure title fallback)")
	cmd.Flags().StringVar(&f.figTitle, "fig-title", "", "Figure title")
	cmd.Flags().StringVar(&f.xlabel, "xlabel", "", "X-axis label (bottom row only)")
	cmd.Flags().StringVar(&f.labels, "labels", "", "Comma-separated per-channel y-labels")
	cmd.Flags().StringVar(&f.labelBase, "label-base", "", "Shared y-label base, suffixed per channel")
	cmd.Flags().StringVar(&f.linespec, "linespec", "", `Line style for the primary curve, e.g. "b-", "r--"`)
	cmd.Flags().StringVar(&f.vlines, "vline", "", "Comma-separated x positions of vertical lines (all subplots)")
	cmd.Flags().StringVar(&f.vlineLabels, "vline-labels", "", "Comma-separated labels for --vline entries")
}

// config resolves the flag set (over an optional YAML spec file) into a
// library Config. Validation proper happens inside the library.
func (f *plotFlags) config(cmd *cobra.Command) (sigplot.Config, error) {
	var cfg sigplot.Config
	if f.specFile != "" {
		loaded, err := loadSpecFile(f.specFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("cols") {
		cfg.NumPlotCols = f.cols
	}
	if cmd.Flags().Changed("column-major") {
		cfg.ColumnMajor = f.columnMajor
	}
	if f.title != "" {
		cfg.PlotTitle = f.title
	}
	if f.figTitle != "" {
		cfg.FigTitle = f.figTitle
	}
	if f.xlabel != "" {
		cfg.XLabel = f.xlabel
	}
	if f.labels != "" {
		cfg.SignalLabels = splitList(f.labels)
	}
	if f.labelBase != "" {
		cfg.LabelBase = f.labelBase
	}
	if f.linespec != "" {
		cfg.LineSpec = f.linespec
	}
	if f.logy != "" {
		idx, err := parseIntList(f.logy)
		if err != nil {
			return cfg, fmt.Errorf("--logy: %w", err)
		}
		cfg.LogY = idx
	}
	if cmd.Flags().Changed("link") || cfg.LinkAxes == sigplot.LinkNone {
		link, err := parseLinkMode(f.link)
		if err != nil {
			return cfg, err
		}
		cfg.LinkAxes = link
	}
	if f.vlines != "" {
		xs, err := parseFloatList(f.vlines)
		if err != nil {
			return cfg, fmt.Errorf("--vline: %w", err)
		}
		cfg.VLines = sigplot.SharedVLines(xs)
		if f.vlineLabels != "" {
			cfg.VLineLabels = sigplot.SharedVLineLabels(splitList(f.vlineLabels))
		}
	}
	if f.matLabels != "" {
		cfg.MatLabels = splitList(f.matLabels)
	}
	return cfg, nil
}

func parseLinkMode(s string) (sigplot.LinkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return sigplot.LinkNone, nil
	case "x":
		return sigplot.LinkX, nil
	case "y":
		return sigplot.LinkY, nil
	case "xy", "both":
		return sigplot.LinkXY, nil
	}
	return sigplot.LinkNone, fmt.Errorf("--link: unknown mode %q", s)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, p := range splitList(s) {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad index %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	var out []float64
	for _, p := range splitList(s) {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}
