package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/e-pet/plot-signals/src/sigplot"
)

// specFile is the YAML form of the library Config. Markers and vlines accept
// either one shared list or one list per channel, matching the tagged option
// variants.
type specFile struct {
	Time              []float64   `yaml:"time"`
	TimePerChannel    [][]float64 `yaml:"time_per_channel"`
	SignalLabels      []string    `yaml:"signal_labels"`
	LabelBase         string      `yaml:"label_base"`
	XLabel            string      `yaml:"xlabel"`
	PlotTitle         string      `yaml:"plot_title"`
	FigTitle          string      `yaml:"fig_title"`
	MatLabels         []string    `yaml:"mat_labels"`
	NumPlotCols       int         `yaml:"num_plot_cols"`
	ColumnMajor       bool        `yaml:"column_major"`
	Markers           []float64   `yaml:"markers"`
	MarkersPerChannel [][]float64 `yaml:"markers_per_channel"`
	VLines            []float64   `yaml:"vlines"`
	VLinesPerChannel  [][]float64 `yaml:"vlines_per_channel"`
	VLineLabels       []string    `yaml:"vline_labels"`
	VLineLabelsPerCh  [][]string  `yaml:"vline_labels_per_channel"`
	LogY              []int       `yaml:"logy"`
	LinkAxes          string      `yaml:"link_axes"`
	LineSpec          string      `yaml:"linespec"`
}

func loadSpecFile(path string) (sigplot.Config, error) {
	var cfg sigplot.Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var sf specFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return sf.toConfig()
}

func (sf specFile) toConfig() (sigplot.Config, error) {
	cfg := sigplot.Config{
		Time:           sf.Time,
		TimePerChannel: sf.TimePerChannel,
		SignalLabels:   sf.SignalLabels,
		LabelBase:      sf.LabelBase,
		XLabel:         sf.XLabel,
		PlotTitle:      sf.PlotTitle,
		FigTitle:       sf.FigTitle,
		MatLabels:      sf.MatLabels,
		NumPlotCols:    sf.NumPlotCols,
		ColumnMajor:    sf.ColumnMajor,
		LogY:           sf.LogY,
		LineSpec:       sf.LineSpec,
	}
	switch {
	case sf.Markers != nil && sf.MarkersPerChannel != nil:
		return cfg, fmt.Errorf("spec file: markers and markers_per_channel are mutually exclusive")
	case sf.Markers != nil:
		cfg.Markers = sigplot.SharedMarkers(sf.Markers)
	case sf.MarkersPerChannel != nil:
		cfg.Markers = sigplot.PerChannelMarkers(sf.MarkersPerChannel)
	}
	switch {
	case sf.VLines != nil && sf.VLinesPerChannel != nil:
		return cfg, fmt.Errorf("spec file: vlines and vlines_per_channel are mutually exclusive")
	case sf.VLines != nil:
		cfg.VLines = sigplot.SharedVLines(sf.VLines)
		if sf.VLineLabels != nil {
			cfg.VLineLabels = sigplot.SharedVLineLabels(sf.VLineLabels)
		}
	case sf.VLinesPerChannel != nil:
		cfg.VLines = sigplot.PerChannelVLines(sf.VLinesPerChannel)
		if sf.VLineLabelsPerCh != nil {
			cfg.VLineLabels = sigplot.PerChannelVLineLabels(sf.VLineLabelsPerCh)
		}
	}
	link, err := parseLinkMode(sf.LinkAxes)
	if err != nil {
		return cfg, fmt.Errorf("spec file: unknown link_axes %q", sf.LinkAxes)
	}
	cfg.LinkAxes = link
	return cfg, nil
}
