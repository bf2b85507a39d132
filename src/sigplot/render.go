package sigplot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const titleBandPx = 28

// tileSize applies the width/height clamp rules for one subplot tile.
// Input: desired raw tile width (0 picks the default). Returns clamped
// width & height.
func tileSize(rawW int) (int, int) {
	w := rawW
	if w <= 0 {
		w = 640
	}
	if w < 320 {
		w = 320
	}
	h := int(float32(w) * 0.55)
	if h < 220 {
		h = 220
	}
	if h > 480 {
		h = 480
	}
	return w, h
}

// Render rasterizes the figure at the default tile size.
func (f *Figure) Render() (image.Image, error) {
	return f.RenderSize(0)
}

// RenderSize rasterizes every subplot as its own chart and composes the tiles
// into one image in grid order, with the figure title stamped across the top.
// A subplot that fails to rasterize (degenerate ranges and the like) becomes a
// blank tile so the rest of the figure still materializes.
func (f *Figure) RenderSize(tileW int) (image.Image, error) {
	defer timeTrack(time.Now(), "figure render")
	if len(f.Subplots) == 0 {
		return nil, fmt.Errorf("render: figure has no subplots")
	}
	tw, th := tileSize(tileW)
	band := 0
	if f.Title != "" {
		band = titleBandPx
	}
	out := image.NewRGBA(image.Rect(0, 0, f.Cols*tw, f.Rows*th+band))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, sp := range f.Subplots {
		tile := f.renderTile(sp, tw, th)
		origin := image.Pt(sp.Col*tw, band+sp.Row*th)
		draw.Draw(out, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(tw, th))}, tile, tile.Bounds().Min, draw.Over)
	}
	if f.Title != "" {
		stampTitle(out, f.Title)
	}
	return out, nil
}

// renderTile draws one subplot through go-chart and decodes it back to an
// image for composition.
func (f *Figure) renderTile(sp *Subplot, w, h int) image.Image {
	ch := f.buildChart(sp, w, h)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		warnf("subplot %d render failed: %v; using blank tile", sp.Index, err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		warnf("subplot %d decode failed: %v; using blank tile", sp.Index, err)
		return blank(w, h)
	}
	return img
}

// buildChart assembles the go-chart value for one subplot: primary curve,
// overlays, marker dots, vertical lines, axis ranges/ticks and the legend.
func (f *Figure) buildChart(sp *Subplot, w, h int) chart.Chart {
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    sp.Primary.Name,
			XValues: sp.Primary.X,
			YValues: sp.Primary.Y,
			Style:   strokeStyle(sp.Primary.Style),
		},
	}
	for _, ov := range sp.Overlays {
		series = append(series, chart.ContinuousSeries{
			Name:    ov.Name,
			XValues: ov.X,
			YValues: ov.Y,
			Style:   strokeStyle(ov.Style),
		})
	}
	if len(sp.Markers) > 0 {
		xs := make([]float64, len(sp.Markers))
		ys := make([]float64, len(sp.Markers))
		for i, mp := range sp.Markers {
			xs[i] = mp.X
			ys[i] = mp.Y
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   markerStyle(sp.Primary.Style),
		})
	}
	for _, vl := range sp.VLines {
		series = append(series, chart.ContinuousSeries{
			Name:    vl.Label,
			XValues: []float64{vl.X, vl.X},
			YValues: []float64{sp.YRange.Min, sp.YRange.Max},
			Style: chart.Style{
				StrokeWidth:     1.0,
				StrokeColor:     drawing.Color{R: 0x66, G: 0x66, B: 0x66, A: 0xFF},
				StrokeDashArray: []float64{4, 4},
			},
		})
	}

	yAxis := chart.YAxis{Name: sp.YLabel}
	if sp.LogY {
		yAxis.Range = &chart.LogarithmicRange{Min: sp.YRange.Min, Max: sp.YRange.Max}
		yAxis.Ticks = logTicks(sp.YRange.Min, sp.YRange.Max)
	} else {
		yAxis.Range = &chart.ContinuousRange{Min: sp.YRange.Min, Max: sp.YRange.Max}
		yAxis.Ticks = niceTicks(sp.YRange.Min, sp.YRange.Max, 6)
	}
	xAxis := chart.XAxis{
		Name:  sp.XLabel,
		Range: &chart.ContinuousRange{Min: sp.XRange.Min, Max: sp.XRange.Max},
		Ticks: niceTicks(sp.XRange.Min, sp.XRange.Max, 7),
	}

	padBottom := 24
	if sp.XLabel != "" {
		padBottom = 36
	}
	ch := chart.Chart{
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 14, Right: 10, Bottom: padBottom}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if hasLegend(sp) {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch
}

// hasLegend reports whether any named series exists (overlays, a named
// primary, or labeled vlines).
func hasLegend(sp *Subplot) bool {
	if sp.Primary.Name != "" || len(sp.Overlays) > 0 {
		return true
	}
	for _, vl := range sp.VLines {
		if vl.Label != "" {
			return true
		}
	}
	return false
}

// strokeStyle maps a parsed linespec to a go-chart stroke style. The zero
// LineStyle yields the zero chart.Style so go-chart applies its own series
// color rotation.
func strokeStyle(ls LineStyle) chart.Style {
	var st chart.Style
	if ls.HasColor {
		st.StrokeColor = drawing.Color{R: ls.Color.R, G: ls.Color.G, B: ls.Color.B, A: ls.Color.A}
		st.StrokeWidth = 1.5
	}
	if ls.Dash != nil {
		st.StrokeDashArray = ls.Dash
		if st.StrokeWidth == 0 {
			st.StrokeWidth = 1.5
		}
	}
	if ls.Dots {
		st.DotWidth = 3
		if ls.HasColor {
			st.DotColor = st.StrokeColor
		}
	}
	if ls.NoLine {
		st.StrokeWidth = 0
	}
	return st
}

// markerStyle renders marker points only, no connecting line.
func markerStyle(primary LineStyle) chart.Style {
	col := drawing.Color{R: 0xD0, G: 0x21, B: 0x2B, A: 0xFF}
	if primary.HasColor {
		col = drawing.Color{R: primary.Color.R, G: primary.Color.G, B: primary.Color.B, A: primary.Color.A}
	}
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    5,
		DotColor:    col,
	}
}

// blank returns a plain white tile used when a subplot fails to rasterize.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// stampTitle draws the figure title centered in the top band.
func stampTitle(img *image.RGBA, title string) {
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}),
		Face: face,
	}
	tw := dr.MeasureString(title).Ceil()
	x := (img.Bounds().Dx() - tw) / 2
	if x < 4 {
		x = 4
	}
	y := (titleBandPx + face.Metrics().Ascent.Ceil()) / 2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + 2)}
	dr.DrawString(title)
}

// SavePNG renders the figure at the default size and writes it to path.
func (f *Figure) SavePNG(path string) error {
	img, err := f.Render()
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return png.Encode(fh, img)
}
