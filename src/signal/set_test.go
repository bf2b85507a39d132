package signal

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewSetSharedOrientation(t *testing.T) {
	// first matrix detects rows-are-channels (2x6); the same orientation is
	// imposed on every member
	set, err := NewSet([]mat.Matrix{fill(2, 6), fill(2, 6), fill(2, 6)})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("set size = %d want 3", len(set))
	}
	for i, m := range set {
		if m.Channels() != 2 || m.Samples() != 6 {
			t.Fatalf("member %d: %d channels / %d samples, want 2 / 6", i, m.Channels(), m.Samples())
		}
		if m.Orientation() != RowsAreChannels {
			t.Fatalf("member %d orientation = %v want rows", i, m.Orientation())
		}
	}
}

func TestNewSetShapeMismatchFails(t *testing.T) {
	cases := []struct {
		name string
		ms   []mat.Matrix
	}{
		{"different sample count", []mat.Matrix{fill(2, 6), fill(2, 7)}},
		{"different channel count", []mat.Matrix{fill(2, 6), fill(3, 6)}},
		{"transposed shape", []mat.Matrix{fill(2, 6), fill(6, 2)}},
	}
	for _, cse := range cases {
		if _, err := NewSet(cse.ms); !errors.Is(err, ErrShape) {
			t.Fatalf("%s: expected ErrShape, got %v", cse.name, err)
		}
	}
}

func TestNewSetEmptyFails(t *testing.T) {
	if _, err := NewSet(nil); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape for empty set, got %v", err)
	}
}
