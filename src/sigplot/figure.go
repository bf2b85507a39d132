package sigplot

// Series is one drawable curve: the primary channel signal or a reference
// overlay. X and Y are sample-aligned.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Style LineStyle
}

// MarkerPoint is a single marker glyph on a channel curve.
type MarkerPoint struct {
	X float64
	Y float64
}

// VLine is a vertical marker line with an optional legend label.
type VLine struct {
	X     float64
	Label string
}

// Subplot is the handle for one channel's axes. Handles are index-aligned
// with the channel index and carry the fully resolved draw state, so tests
// and callers can inspect layout, labels and ranges without rendering.
type Subplot struct {
	Index int
	Row   int
	Col   int

	Primary  Series
	Overlays []Series
	Markers  []MarkerPoint
	VLines   []VLine

	YLabel string
	// XLabel is only set on bottom-most subplots of each column.
	XLabel string
	LogY   bool

	XRange Range
	YRange Range
}

// Figure is the top-level handle: grid dimensions, resolved link mode and the
// ordered subplot handles.
type Figure struct {
	Title    string
	Rows     int
	Cols     int
	Link     LinkMode
	Subplots []*Subplot
}

// gridDims derives the subplot grid from the channel count and the requested
// column count (rows = ceil(channels/cols)).
func gridDims(channels, cols int) (int, int) {
	if cols <= 0 {
		cols = 1
	}
	if cols > channels {
		cols = channels
	}
	rows := (channels + cols - 1) / cols
	return rows, cols
}

// cellFor places channel i in the grid, row-major by default or column-major
// when requested.
func cellFor(i, rows, cols int, columnMajor bool) (int, int) {
	if columnMajor {
		return i % rows, i / rows
	}
	return i / cols, i % cols
}

// bottomOfColumn reports whether subplot sp has no occupied cell below it, in
// which case it carries the x-axis label.
func (f *Figure) bottomOfColumn(sp *Subplot) bool {
	for _, other := range f.Subplots {
		if other.Col == sp.Col && other.Row > sp.Row {
			return false
		}
	}
	return true
}

// linkRanges applies the link mode: linked axes get one shared range, the
// union of the per-subplot ranges, stamped into every subplot handle.
func (f *Figure) linkRanges() {
	if len(f.Subplots) == 0 {
		return
	}
	if f.Link.linksX() {
		shared := f.Subplots[0].XRange
		for _, sp := range f.Subplots[1:] {
			shared = shared.union(sp.XRange)
		}
		for _, sp := range f.Subplots {
			sp.XRange = shared
		}
	}
	if f.Link.linksY() {
		shared := f.Subplots[0].YRange
		for _, sp := range f.Subplots[1:] {
			shared = shared.union(sp.YRange)
		}
		for _, sp := range f.Subplots {
			sp.YRange = shared
		}
	}
}
