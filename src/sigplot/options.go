// Package sigplot arranges multi-channel signal plots: one subplot per
// channel, optional reference overlays, markers, vertical lines, per-channel
// log scaling and axis linking. All options are validated up front; a failed
// call returns an error and no figure.
package sigplot

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration validation failure.
var ErrConfig = errors.New("sigplot: invalid configuration")

// LinkMode selects which axes are linked (share one range) across subplots.
type LinkMode int

const (
	LinkNone LinkMode = iota
	LinkX
	LinkY
	LinkXY
)

func (l LinkMode) String() string {
	switch l {
	case LinkX:
		return "x"
	case LinkY:
		return "y"
	case LinkXY:
		return "xy"
	default:
		return "none"
	}
}

// linksX reports whether x ranges are shared.
func (l LinkMode) linksX() bool { return l == LinkX || l == LinkXY }

// linksY reports whether y ranges are shared.
func (l LinkMode) linksY() bool { return l == LinkY || l == LinkXY }

// MarkerSpec is a resolved marker option: no markers, one indicator vector
// applied to every channel, or one indicator vector per channel. A marker is
// drawn on the channel curve wherever the indicator is non-zero.
type MarkerSpec struct {
	shared     []float64
	perChannel [][]float64
}

// NoMarkers is the zero MarkerSpec.
func NoMarkers() MarkerSpec { return MarkerSpec{} }

// SharedMarkers applies one indicator vector (sample-aligned) to all channels.
func SharedMarkers(indicator []float64) MarkerSpec {
	return MarkerSpec{shared: indicator}
}

// PerChannelMarkers supplies one indicator vector per channel.
func PerChannelMarkers(indicators [][]float64) MarkerSpec {
	return MarkerSpec{perChannel: indicators}
}

func (m MarkerSpec) empty() bool { return m.shared == nil && m.perChannel == nil }

func (m MarkerSpec) forChannel(i int) []float64 {
	if m.shared != nil {
		return m.shared
	}
	if m.perChannel != nil {
		return m.perChannel[i]
	}
	return nil
}

// VLineSpec is a resolved vertical-line option: none, one list of x positions
// applied to every channel, or one list per channel.
type VLineSpec struct {
	shared     []float64
	perChannel [][]float64
}

// NoVLines is the zero VLineSpec.
func NoVLines() VLineSpec { return VLineSpec{} }

// SharedVLines draws vertical lines at xs in every subplot.
func SharedVLines(xs []float64) VLineSpec { return VLineSpec{shared: xs} }

// PerChannelVLines supplies one position list per channel.
func PerChannelVLines(xs [][]float64) VLineSpec { return VLineSpec{perChannel: xs} }

func (v VLineSpec) empty() bool { return v.shared == nil && v.perChannel == nil }

func (v VLineSpec) forChannel(i int) []float64 {
	if v.shared != nil {
		return v.shared
	}
	if v.perChannel != nil {
		return v.perChannel[i]
	}
	return nil
}

// VLineLabelSpec carries optional legend labels for vertical lines, shaped
// like the VLineSpec it accompanies.
type VLineLabelSpec struct {
	shared     []string
	perChannel [][]string
}

// NoVLineLabels is the zero VLineLabelSpec.
func NoVLineLabels() VLineLabelSpec { return VLineLabelSpec{} }

// SharedVLineLabels labels the shared vertical-line positions.
func SharedVLineLabels(ls []string) VLineLabelSpec { return VLineLabelSpec{shared: ls} }

// PerChannelVLineLabels supplies one label list per channel.
func PerChannelVLineLabels(ls [][]string) VLineLabelSpec { return VLineLabelSpec{perChannel: ls} }

func (v VLineLabelSpec) empty() bool { return v.shared == nil && v.perChannel == nil }

func (v VLineLabelSpec) forChannel(i int) []string {
	if v.shared != nil {
		return v.shared
	}
	if v.perChannel != nil {
		return v.perChannel[i]
	}
	return nil
}

// Config is the per-call option record. The zero value asks for a single
// column of subplots, row-major fill, index x-axis, numeric y-labels, no
// markers, no vertical lines, linear axes and no linking.
type Config struct {
	// Time is a shared x vector, sample-aligned. Mutually exclusive with
	// TimePerChannel. When both are absent the x-axis is the sample index
	// starting at 1.
	Time           []float64
	TimePerChannel [][]float64

	// SignalLabels gives one y-label per channel. LabelBase instead derives
	// labels as "<base> <n>" with a 1-based suffix. With neither, labels are
	// the 1-based channel index.
	SignalLabels []string
	LabelBase    string

	XLabel    string
	PlotTitle string
	// FigTitle is the figure-level title; PlotTitle is the fallback.
	FigTitle string

	// MatLabels names the compared sets (legend entries), primary first.
	// Only meaningful for CompareSignals.
	MatLabels []string

	// NumPlotCols is the subplot column count (default 1).
	NumPlotCols int
	// ColumnMajor fills the grid column by column; default is row-major.
	ColumnMajor bool

	Markers     MarkerSpec
	VLines      VLineSpec
	VLineLabels VLineLabelSpec

	// LogY lists 0-based channel indices drawn with a logarithmic y-axis.
	// Incompatible with LinkY/LinkXY.
	LogY []int

	LinkAxes LinkMode

	// LineSpec is a compact style string for the primary curve, e.g. "b-",
	// "r--", "k:", "g-.", "bo". Empty picks the backend default.
	LineSpec string

	// refs carries per-channel reference overlays; populated by
	// CompareSignals, never set by callers.
	refs [][]refSignal
}

// refSignal is one reference overlay curve for a single channel.
type refSignal struct {
	name string
	y    []float64
}

// validate checks every option against the channel count nch and sample count
// ns. It runs before anything is drawn; any error means no figure is built.
func (c *Config) validate(nch, ns int) error {
	if c.Time != nil && c.TimePerChannel != nil {
		return fmt.Errorf("%w: Time and TimePerChannel are mutually exclusive", ErrConfig)
	}
	if c.Time != nil && len(c.Time) != ns {
		return fmt.Errorf("%w: Time has %d entries, want %d samples", ErrConfig, len(c.Time), ns)
	}
	if c.TimePerChannel != nil {
		if len(c.TimePerChannel) != nch {
			return fmt.Errorf("%w: TimePerChannel has %d entries, want %d channels", ErrConfig, len(c.TimePerChannel), nch)
		}
		for i, t := range c.TimePerChannel {
			if len(t) != ns {
				return fmt.Errorf("%w: TimePerChannel[%d] has %d entries, want %d samples", ErrConfig, i, len(t), ns)
			}
		}
	}
	if c.SignalLabels != nil && c.LabelBase != "" {
		return fmt.Errorf("%w: SignalLabels and LabelBase are mutually exclusive", ErrConfig)
	}
	if c.SignalLabels != nil && len(c.SignalLabels) != nch {
		return fmt.Errorf("%w: %d signal labels for %d channels", ErrConfig, len(c.SignalLabels), nch)
	}
	if c.NumPlotCols < 0 {
		return fmt.Errorf("%w: NumPlotCols must be >= 0", ErrConfig)
	}
	if c.Markers.shared != nil && c.Markers.perChannel != nil {
		return fmt.Errorf("%w: shared and per-channel markers are mutually exclusive", ErrConfig)
	}
	if c.Markers.shared != nil && len(c.Markers.shared) != ns {
		return fmt.Errorf("%w: marker vector has %d entries, want %d samples", ErrConfig, len(c.Markers.shared), ns)
	}
	if c.Markers.perChannel != nil {
		if len(c.Markers.perChannel) != nch {
			return fmt.Errorf("%w: %d marker vectors for %d channels", ErrConfig, len(c.Markers.perChannel), nch)
		}
		for i, mv := range c.Markers.perChannel {
			if mv != nil && len(mv) != ns {
				return fmt.Errorf("%w: marker vector %d has %d entries, want %d samples", ErrConfig, i, len(mv), ns)
			}
		}
	}
	if c.VLines.shared != nil && c.VLines.perChannel != nil {
		return fmt.Errorf("%w: shared and per-channel vlines are mutually exclusive", ErrConfig)
	}
	if c.VLines.perChannel != nil && len(c.VLines.perChannel) != nch {
		return fmt.Errorf("%w: %d vline lists for %d channels", ErrConfig, len(c.VLines.perChannel), nch)
	}
	if !c.VLineLabels.empty() {
		if c.VLines.empty() {
			return fmt.Errorf("%w: vline labels without vlines", ErrConfig)
		}
		if c.VLineLabels.shared != nil {
			if c.VLines.shared == nil {
				return fmt.Errorf("%w: shared vline labels require shared vlines", ErrConfig)
			}
			if len(c.VLineLabels.shared) != len(c.VLines.shared) {
				return fmt.Errorf("%w: %d vline labels for %d vlines", ErrConfig, len(c.VLineLabels.shared), len(c.VLines.shared))
			}
		}
		if c.VLineLabels.perChannel != nil {
			if c.VLines.perChannel == nil {
				return fmt.Errorf("%w: per-channel vline labels require per-channel vlines", ErrConfig)
			}
			if len(c.VLineLabels.perChannel) != nch {
				return fmt.Errorf("%w: %d vline label lists for %d channels", ErrConfig, len(c.VLineLabels.perChannel), nch)
			}
			for i, ls := range c.VLineLabels.perChannel {
				if ls != nil && len(ls) != len(c.VLines.perChannel[i]) {
					return fmt.Errorf("%w: channel %d has %d vline labels for %d vlines", ErrConfig, i, len(ls), len(c.VLines.perChannel[i]))
				}
			}
		}
	}
	for _, idx := range c.LogY {
		if idx < 0 || idx >= nch {
			return fmt.Errorf("%w: LogY index %d out of range [0,%d)", ErrConfig, idx, nch)
		}
	}
	if len(c.LogY) > 0 && c.LinkAxes.linksY() {
		return fmt.Errorf("%w: y-axis linking cannot be combined with log-scale channels", ErrConfig)
	}
	if c.LinkAxes < LinkNone || c.LinkAxes > LinkXY {
		return fmt.Errorf("%w: unknown link mode %d", ErrConfig, int(c.LinkAxes))
	}
	if _, err := ParseLineSpec(c.LineSpec); err != nil {
		return err
	}
	return nil
}
