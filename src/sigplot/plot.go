package sigplot

import (
	"fmt"
	"strconv"

	"github.com/e-pet/plot-signals/src/signal"
)

// PlotSignals lays the channels of signals out as a subplot grid and returns
// the figure handle plus the channel-ordered subplot handles. Nothing is
// rasterized here; call Figure.Render or the vector exporter on the result.
// Any configuration problem fails the whole call before a figure exists.
func PlotSignals(signals signal.Matrix, cfg Config) (*Figure, []*Subplot, error) {
	nch, ns := signals.Channels(), signals.Samples()
	if nch == 0 || ns == 0 {
		return nil, nil, fmt.Errorf("%w: no signal data", ErrConfig)
	}
	if err := cfg.validate(nch, ns); err != nil {
		return nil, nil, err
	}
	style, err := ParseLineSpec(cfg.LineSpec)
	if err != nil {
		return nil, nil, err
	}
	logSet := make(map[int]bool, len(cfg.LogY))
	for _, idx := range cfg.LogY {
		logSet[idx] = true
	}
	// Log axes cannot represent values <= 0, so a log channel with no
	// positive sample anywhere (primary or overlay) is rejected up front.
	for _, idx := range cfg.LogY {
		if !hasPositive(signals.Channel(idx), cfg.refs, idx) {
			return nil, nil, fmt.Errorf("%w: channel %d has no positive sample for log scaling", ErrConfig, idx)
		}
	}

	rows, cols := gridDims(nch, cfg.NumPlotCols)
	fig := &Figure{
		Title: resolveTitle(cfg),
		Rows:  rows,
		Cols:  cols,
		Link:  cfg.LinkAxes,
	}

	for i := 0; i < nch; i++ {
		row, col := cellFor(i, rows, cols, cfg.ColumnMajor)
		x := resolveX(cfg, i, ns)
		y := signals.Channel(i)

		sp := &Subplot{
			Index:  i,
			Row:    row,
			Col:    col,
			YLabel: resolveYLabel(cfg, i),
			LogY:   logSet[i],
		}
		sp.Primary = Series{Name: primaryName(cfg), X: x, Y: y, Style: style}
		if cfg.refs != nil {
			for _, ref := range cfg.refs[i] {
				sp.Overlays = append(sp.Overlays, Series{Name: ref.name, X: x, Y: ref.y})
			}
		}
		if mv := cfg.Markers.forChannel(i); mv != nil {
			for j, v := range mv {
				if v != 0 {
					sp.Markers = append(sp.Markers, MarkerPoint{X: x[j], Y: y[j]})
				}
			}
		}
		if xs := cfg.VLines.forChannel(i); xs != nil {
			labels := cfg.VLineLabels.forChannel(i)
			for j, vx := range xs {
				vl := VLine{X: vx}
				if j < len(labels) {
					vl.Label = labels[j]
				}
				sp.VLines = append(sp.VLines, vl)
			}
		}
		sp.XRange, sp.YRange = subplotRanges(sp)
		fig.Subplots = append(fig.Subplots, sp)
	}

	if cfg.XLabel != "" {
		for _, sp := range fig.Subplots {
			if fig.bottomOfColumn(sp) {
				sp.XLabel = cfg.XLabel
			}
		}
	}
	fig.linkRanges()
	return fig, fig.Subplots, nil
}

// resolveX picks the channel's x vector: the shared Time vector, the channel's
// entry of TimePerChannel, or the 1-based sample index.
func resolveX(cfg Config, ch, ns int) []float64 {
	if cfg.Time != nil {
		return cfg.Time
	}
	if cfg.TimePerChannel != nil {
		return cfg.TimePerChannel[ch]
	}
	x := make([]float64, ns)
	for j := range x {
		x[j] = float64(j + 1)
	}
	return x
}

// resolveYLabel resolves signal labels: explicit per-channel list, shared base
// with a 1-based suffix, or the bare 1-based channel index.
func resolveYLabel(cfg Config, ch int) string {
	if cfg.SignalLabels != nil {
		return cfg.SignalLabels[ch]
	}
	if cfg.LabelBase != "" {
		return fmt.Sprintf("%s %d", cfg.LabelBase, ch+1)
	}
	return strconv.Itoa(ch + 1)
}

func resolveTitle(cfg Config) string {
	if cfg.FigTitle != "" {
		return cfg.FigTitle
	}
	return cfg.PlotTitle
}

// primaryName names the primary curve for the legend. Only comparisons label
// the primary; a plain plot has nothing to disambiguate.
func primaryName(cfg Config) string {
	if cfg.refs == nil {
		return ""
	}
	return setLabel(cfg, 0)
}

// setLabel names compared set i (0 = primary), falling back to its 1-based
// index.
func setLabel(cfg Config, i int) string {
	if cfg.MatLabels != nil {
		return cfg.MatLabels[i]
	}
	return strconv.Itoa(i + 1)
}

func hasPositive(primary []float64, refs [][]refSignal, ch int) bool {
	if _, ok := minPositive(primary); ok {
		return true
	}
	if refs != nil {
		for _, ref := range refs[ch] {
			if _, ok := minPositive(ref.y); ok {
				return true
			}
		}
	}
	return false
}

// subplotRanges resolves the subplot's own axis ranges before any linking.
// X covers the data plus any vertical lines; Y uses nice rounded bounds, or
// decade bounds over the positive values for log channels.
func subplotRanges(sp *Subplot) (Range, Range) {
	xr, _ := dataRange(sp.Primary.X)
	for _, vl := range sp.VLines {
		xr = xr.union(Range{Min: vl.X, Max: vl.X})
	}

	if sp.LogY {
		lo, hi := logSeriesBounds(sp)
		return xr, Range{Min: lo, Max: hi}
	}
	yr, ok := dataRange(sp.Primary.Y)
	for _, ov := range sp.Overlays {
		if r, o := dataRange(ov.Y); o {
			if !ok {
				yr, ok = r, true
			} else {
				yr = yr.union(r)
			}
		}
	}
	if !ok {
		yr = Range{Min: 0, Max: 1}
	}
	lo, hi := niceAxisBounds(yr.Min, yr.Max)
	return xr, Range{Min: lo, Max: hi}
}

func logSeriesBounds(sp *Subplot) (float64, float64) {
	min, max := 0.0, 0.0
	scan := func(ys []float64) {
		p, ok := minPositive(ys)
		if !ok {
			return
		}
		if min == 0 || p < min {
			min = p
		}
		if r, o := dataRange(ys); o && r.Max > max {
			max = r.Max
		}
	}
	scan(sp.Primary.Y)
	for _, ov := range sp.Overlays {
		scan(ov.Y)
	}
	// hasPositive guarantees min > 0 here
	return logAxisBounds(min, max)
}
