package main

import (
	"testing"

	"github.com/e-pet/plot-signals/src/sigplot"
)

func TestParseLinkMode(t *testing.T) {
	cases := []struct {
		in   string
		want sigplot.LinkMode
		ok   bool
	}{
		{"none", sigplot.LinkNone, true},
		{"", sigplot.LinkNone, true},
		{"x", sigplot.LinkX, true},
		{"Y", sigplot.LinkY, true},
		{"xy", sigplot.LinkXY, true},
		{"both", sigplot.LinkXY, true},
		{"diagonal", sigplot.LinkNone, false},
	}
	for _, cse := range cases {
		got, err := parseLinkMode(cse.in)
		if cse.ok && err != nil {
			t.Fatalf("parseLinkMode(%q): %v", cse.in, err)
		}
		if !cse.ok && err == nil {
			t.Fatalf("parseLinkMode(%q): expected error", cse.in)
		}
		if cse.ok && got != cse.want {
			t.Fatalf("parseLinkMode(%q) = %v want %v", cse.in, got, cse.want)
		}
	}
}

func TestParseFloatList(t *testing.T) {
	xs, err := parseFloatList("1.5, 2,3.25")
	if err != nil {
		t.Fatalf("parseFloatList: %v", err)
	}
	want := []float64{1.5, 2, 3.25}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("entry %d = %v want %v", i, xs[i], want[i])
		}
	}
	if _, err := parseFloatList("1,x"); err == nil {
		t.Fatalf("expected error for non-numeric entry")
	}
}

func TestParseIntList(t *testing.T) {
	idx, err := parseIntList("0, 2")
	if err != nil {
		t.Fatalf("parseIntList: %v", err)
	}
	if len(idx) != 2 || idx[0] != 0 || idx[1] != 2 {
		t.Fatalf("parseIntList = %v want [0 2]", idx)
	}
	if _, err := parseIntList("1.5"); err == nil {
		t.Fatalf("expected error for non-integer entry")
	}
}

func TestFlagsConfigResolution(t *testing.T) {
	flags := &plotFlags{}
	cmd := newPlotCmd()
	if err := cmd.Flags().Parse([]string{
		"--cols", "2", "--logy", "0,1", "--link", "x",
		"--labels", "a,b", "--vline", "3", "--vline-labels", "event",
	}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	// re-bind onto our own flags struct for inspection
	flags.cols = 2
	flags.logy = "0,1"
	flags.link = "x"
	flags.labels = "a,b"
	flags.vlines = "3"
	flags.vlineLabels = "event"
	cfg, err := flags.config(cmd)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.NumPlotCols != 2 {
		t.Fatalf("NumPlotCols = %d want 2", cfg.NumPlotCols)
	}
	if len(cfg.LogY) != 2 {
		t.Fatalf("LogY = %v want two indices", cfg.LogY)
	}
	if cfg.LinkAxes != sigplot.LinkX {
		t.Fatalf("LinkAxes = %v want x", cfg.LinkAxes)
	}
	if len(cfg.SignalLabels) != 2 || cfg.SignalLabels[1] != "b" {
		t.Fatalf("SignalLabels = %v want [a b]", cfg.SignalLabels)
	}
}
