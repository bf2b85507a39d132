package sigplot

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Range is a resolved axis interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) span() float64 { return r.Max - r.Min }

// union widens r to cover o.
func (r Range) union(o Range) Range {
	if o.Min < r.Min {
		r.Min = o.Min
	}
	if o.Max > r.Max {
		r.Max = o.Max
	}
	return r
}

// niceAxisBounds pads [min,max] by 5% per side and rounds both ends outward to
// the span's order of magnitude, so subplot frames don't clip the data.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if mag > 0 && !math.IsInf(mag, 0) {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// logAxisBounds widens a strictly-positive interval by one decade step on
// each side in log space. min must be > 0 (validated upstream).
func logAxisBounds(min, max float64) (float64, float64) {
	if max <= min {
		max = min * 10
	}
	lo := math.Pow(10, math.Floor(math.Log10(min)))
	hi := math.Pow(10, math.Ceil(math.Log10(max)))
	if lo == hi {
		hi = lo * 10
	}
	return lo, hi
}

// niceTicks places about n ticks over [min,max] using 1/2/2.5/5 steps scaled
// by a power of ten.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	var ticks []chart.Tick
	for v := math.Ceil(min/bestStep) * bestStep; v <= max+bestStep/2; v += bestStep {
		if v < min {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// logTicks marks every decade in [min,max] (both already rounded to decades).
func logTicks(min, max float64) []chart.Tick {
	if min <= 0 || max <= min {
		return nil
	}
	var ticks []chart.Tick
	for e := math.Floor(math.Log10(min)); e <= math.Ceil(math.Log10(max))+0.5; e++ {
		v := math.Pow(10, e)
		if v < min*0.999 || v > max*1.001 {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// formatTick trims tick labels to a readable precision.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.2g", v)
	}
}

// dataRange scans vals for finite min/max. ok is false when nothing finite
// was seen.
func dataRange(vals []float64) (Range, bool) {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == math.MaxFloat64 {
		return Range{}, false
	}
	return Range{Min: min, Max: max}, true
}

// minPositive returns the smallest strictly positive finite entry, or ok=false.
func minPositive(vals []float64) (float64, bool) {
	best := math.MaxFloat64
	found := false
	for _, v := range vals {
		if v > 0 && !math.IsInf(v, 1) && v < best {
			best = v
			found = true
		}
	}
	return best, found
}
