// Package vecexport writes a sigplot figure through gonum/plot, which gives
// scalable SVG and PDF output (plus PNG) for publication use. The raster
// go-chart path in sigplot stays the default; this package maps the same
// backend-neutral figure model onto gonum plots and aligns them as tiles.
package vecexport

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/e-pet/plot-signals/src/sigplot"
)

// Save writes fig to path, choosing the format from the extension
// (.png, .svg or .pdf). w and h are the overall figure dimensions.
func Save(fig *sigplot.Figure, path string, w, h vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	ext := strings.ToLower(filepath.Ext(path))
	if err := Write(fig, f, ext, w, h); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// Write renders fig in the given format ("png", "svg" or "pdf"; a leading dot
// is accepted) to wr.
func Write(fig *sigplot.Figure, wr io.Writer, format string, w, h vg.Length) error {
	plots, err := buildPlots(fig)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows: fig.Rows,
		Cols: fig.Cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	format = strings.TrimPrefix(format, ".")
	switch format {
	case "png":
		c := vgimg.New(w, h)
		drawTiles(plots, tiles, draw.New(c))
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(wr)
	case "svg":
		c := vgsvg.New(w, h)
		drawTiles(plots, tiles, draw.New(c))
		_, err = c.WriteTo(wr)
	case "pdf":
		c := vgpdf.New(w, h)
		drawTiles(plots, tiles, draw.New(c))
		_, err = c.WriteTo(wr)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	return err
}

func drawTiles(plots [][]*plot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}
}

// buildPlots turns every subplot handle into a gonum plot, placed in a
// rows×cols grid (nil cells stay empty). gonum/plot has no figure-level
// title, so the title goes on the top-left plot.
func buildPlots(fig *sigplot.Figure) ([][]*plot.Plot, error) {
	plots := make([][]*plot.Plot, fig.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, fig.Cols)
	}
	for _, sp := range fig.Subplots {
		p, err := buildPlot(sp)
		if err != nil {
			return nil, fmt.Errorf("subplot %d: %w", sp.Index, err)
		}
		plots[sp.Row][sp.Col] = p
	}
	if fig.Title != "" && plots[0][0] != nil {
		plots[0][0].Title.Text = fig.Title
	}
	return plots, nil
}

func buildPlot(sp *sigplot.Subplot) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = sp.XLabel
	p.Y.Label.Text = sp.YLabel
	p.X.Min, p.X.Max = sp.XRange.Min, sp.XRange.Max
	p.Y.Min, p.Y.Max = sp.YRange.Min, sp.YRange.Max
	if sp.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	primary, err := addLine(p, sp.Primary, plotutil.Color(0))
	if err != nil {
		return nil, err
	}
	if sp.Primary.Name != "" {
		p.Legend.Add(sp.Primary.Name, primary)
	}
	for k, ov := range sp.Overlays {
		l, err := addLine(p, ov, plotutil.Color(k+1))
		if err != nil {
			return nil, err
		}
		if ov.Name != "" {
			p.Legend.Add(ov.Name, l)
		}
	}
	if len(sp.Markers) > 0 {
		pts := make(plotter.XYs, len(sp.Markers))
		for i, mp := range sp.Markers {
			pts[i].X, pts[i].Y = mp.X, mp.Y
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Radius = vg.Points(2.5)
		s.GlyphStyle.Color = lineColor(sp.Primary.Style, plotutil.Color(0))
		p.Add(s)
	}
	for _, vl := range sp.VLines {
		l, err := plotter.NewLine(plotter.XYs{
			{X: vl.X, Y: sp.YRange.Min},
			{X: vl.X, Y: sp.YRange.Max},
		})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = color.Gray{Y: 0x66}
		l.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(l)
		if vl.Label != "" {
			p.Legend.Add(vl.Label, l)
		}
	}
	p.Legend.Top = true
	return p, nil
}

func addLine(p *plot.Plot, s sigplot.Series, fallback color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(s.Y))
	for i := range s.Y {
		pts[i].X, pts[i].Y = s.X[i], s.Y[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = lineColor(s.Style, fallback)
	if s.Style.Dash != nil {
		dashes := make([]vg.Length, len(s.Style.Dash))
		for i, d := range s.Style.Dash {
			dashes[i] = vg.Points(d)
		}
		l.LineStyle.Dashes = dashes
	}
	if s.Style.NoLine {
		l.LineStyle.Width = 0
	}
	p.Add(l)
	if s.Style.Dots {
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Color = l.LineStyle.Color
		p.Add(sc)
	}
	return l, nil
}

func lineColor(ls sigplot.LineStyle, fallback color.Color) color.Color {
	if ls.HasColor {
		return ls.Color
	}
	return fallback
}
