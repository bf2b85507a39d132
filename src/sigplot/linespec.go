package sigplot

import (
	"fmt"
	"image/color"
)

// LineStyle is a parsed line specification, kept backend-neutral so both the
// raster and vector backends can consume it.
type LineStyle struct {
	Color    color.RGBA
	HasColor bool
	// Dash is the stroke dash pattern in pixels; nil means solid.
	Dash []float64
	// Dots draws a glyph at every sample.
	Dots bool
	// NoLine suppresses the connecting stroke (dot-only specs like "ko").
	NoLine bool
}

var specColors = map[byte]color.RGBA{
	'b': {R: 0x00, G: 0x6E, B: 0xD8, A: 0xFF},
	'g': {R: 0x00, G: 0xA6, B: 0x5A, A: 0xFF},
	'r': {R: 0xD0, G: 0x21, B: 0x2B, A: 0xFF},
	'c': {R: 0x00, G: 0xB5, B: 0xC4, A: 0xFF},
	'm': {R: 0xB3, G: 0x2D, B: 0xB0, A: 0xFF},
	'y': {R: 0xC9, G: 0xA2, B: 0x00, A: 0xFF},
	'k': {R: 0x33, G: 0x33, B: 0x33, A: 0xFF},
	'w': {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// ParseLineSpec parses a compact style string: an optional color letter
// (b g r c m y k w), an optional dash token ("-", "--", ":", "-."), and an
// optional dot glyph letter (o . x + * s). Empty input yields the zero style
// (backend default). Anything else is a validation error.
func ParseLineSpec(s string) (LineStyle, error) {
	var st LineStyle
	if s == "" {
		return st, nil
	}
	rest := s
	if c, ok := specColors[rest[0]]; ok {
		st.Color = c
		st.HasColor = true
		rest = rest[1:]
	}
	hasLine := false
	switch {
	case len(rest) >= 2 && rest[:2] == "--":
		st.Dash = []float64{6, 4}
		hasLine = true
		rest = rest[2:]
	case len(rest) >= 2 && rest[:2] == "-.":
		st.Dash = []float64{6, 3, 2, 3}
		hasLine = true
		rest = rest[2:]
	case len(rest) >= 1 && rest[0] == ':':
		st.Dash = []float64{2, 3}
		hasLine = true
		rest = rest[1:]
	case len(rest) >= 1 && rest[0] == '-':
		hasLine = true
		rest = rest[1:]
	}
	if len(rest) > 0 {
		switch rest[0] {
		case 'o', '.', 'x', '+', '*', 's':
			st.Dots = true
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		return LineStyle{}, fmt.Errorf("%w: unrecognized linespec %q", ErrConfig, s)
	}
	if st.Dots && !hasLine {
		st.NoLine = true
	}
	return st, nil
}
