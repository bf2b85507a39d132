package sigplot

import "testing"

func TestLinkModeString(t *testing.T) {
	cases := []struct {
		in   LinkMode
		want string
	}{
		{LinkNone, "none"},
		{LinkX, "x"},
		{LinkY, "y"},
		{LinkXY, "xy"},
	}
	for _, cse := range cases {
		if got := cse.in.String(); got != cse.want {
			t.Fatalf("LinkMode(%d).String() = %q want %q", int(cse.in), got, cse.want)
		}
	}
}

func TestMarkerSpecResolution(t *testing.T) {
	shared := SharedMarkers([]float64{0, 1})
	if got := shared.forChannel(3); got == nil || got[1] != 1 {
		t.Fatalf("shared markers must apply to every channel, got %v", got)
	}
	per := PerChannelMarkers([][]float64{{1}, {0}})
	if per.forChannel(0)[0] != 1 || per.forChannel(1)[0] != 0 {
		t.Fatalf("per-channel markers must resolve by index")
	}
	if !NoMarkers().empty() {
		t.Fatalf("NoMarkers must be empty")
	}
}

func TestVLineSpecResolution(t *testing.T) {
	shared := SharedVLines([]float64{2.5})
	if got := shared.forChannel(1); len(got) != 1 || got[0] != 2.5 {
		t.Fatalf("shared vlines must apply to every channel, got %v", got)
	}
	per := PerChannelVLines([][]float64{{1}, nil})
	if per.forChannel(1) != nil {
		t.Fatalf("channel without vlines must resolve to nil")
	}
	if !NoVLines().empty() || !NoVLineLabels().empty() {
		t.Fatalf("zero specs must be empty")
	}
}
