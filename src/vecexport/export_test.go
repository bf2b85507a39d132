package vecexport

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/e-pet/plot-signals/src/signal"
	"github.com/e-pet/plot-signals/src/sigplot"
)

func testFigure(t *testing.T) *sigplot.Figure {
	t.Helper()
	rows := make([][]float64, 2)
	for i := range rows {
		row := make([]float64, 64)
		for j := range row {
			row[j] = math.Cos(float64(j)/10) + float64(i)
		}
		rows[i] = row
	}
	m, err := signal.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	fig, _, err := sigplot.PlotSignals(m, sigplot.Config{
		FigTitle:    "export test",
		XLabel:      "t",
		VLines:      sigplot.SharedVLines([]float64{32}),
		VLineLabels: sigplot.SharedVLineLabels([]string{"mid"}),
	})
	if err != nil {
		t.Fatalf("PlotSignals: %v", err)
	}
	return fig
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(testFigure(t), &buf, "svg", 8*vg.Inch, 6*vg.Inch); err != nil {
		t.Fatalf("Write svg: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("svg output missing <svg element")
	}
}

func TestSaveByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fig.png", "fig.svg", "fig.pdf"} {
		path := filepath.Join(dir, name)
		if err := Save(testFigure(t), path, 8*vg.Inch, 6*vg.Inch); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestWriteUnknownFormatFails(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(testFigure(t), &buf, "bmp", 4*vg.Inch, 3*vg.Inch); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLogSubplotExports(t *testing.T) {
	m, err := signal.FromRows([][]float64{{1, 10, 100, 1000, 10000, 100}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	fig, _, err := sigplot.PlotSignals(m, sigplot.Config{LogY: []int{0}})
	if err != nil {
		t.Fatalf("PlotSignals: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(fig, &buf, "svg", 6*vg.Inch, 4*vg.Inch); err != nil {
		t.Fatalf("Write log svg: %v", err)
	}
}
