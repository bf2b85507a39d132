package signal

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func fill(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(i)
	}
	return mat.NewDense(r, c, data)
}

func TestDetectOrientation(t *testing.T) {
	cases := []struct {
		r, c int
		want Orientation
	}{
		{3, 1000, RowsAreChannels},
		{1000, 3, ColsAreChannels},
		{4, 4, RowsAreChannels}, // tie-break: rows are channels
		{1, 2, RowsAreChannels},
		{2, 1, ColsAreChannels},
	}
	for _, cse := range cases {
		got := DetectOrientation(cse.r, cse.c)
		if got != cse.want {
			t.Fatalf("DetectOrientation(%d,%d) = %v want %v", cse.r, cse.c, got, cse.want)
		}
	}
}

func TestDetectChannelCountIsMinDim(t *testing.T) {
	cases := []struct {
		r, c     int
		wantCh   int
		wantSamp int
	}{
		{3, 1000, 3, 1000},
		{1000, 3, 3, 1000},
		{5, 5, 5, 5},
		{2, 500, 2, 500},
	}
	for _, cse := range cases {
		m, err := Detect(fill(cse.r, cse.c))
		if err != nil {
			t.Fatalf("Detect(%dx%d): %v", cse.r, cse.c, err)
		}
		if m.Channels() != cse.wantCh || m.Samples() != cse.wantSamp {
			t.Fatalf("Detect(%dx%d) = %d channels / %d samples, want %d / %d",
				cse.r, cse.c, m.Channels(), m.Samples(), cse.wantCh, cse.wantSamp)
		}
	}
}

func TestDetectColumnOrientedExtraction(t *testing.T) {
	// 4x2: columns are channels; channel 1 must be the second column
	d := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	m, err := Detect(d)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if m.Orientation() != ColsAreChannels {
		t.Fatalf("orientation = %v want columns", m.Orientation())
	}
	ch := m.Channel(1)
	want := []float64{10, 20, 30, 40}
	for i, v := range want {
		if ch[i] != v {
			t.Fatalf("channel 1 sample %d = %v want %v", i, ch[i], v)
		}
	}
}

func TestDetectAsOverridesDetection(t *testing.T) {
	// would auto-detect as rows (2x3); force columns instead
	m, err := DetectAs(fill(2, 3), ColsAreChannels)
	if err != nil {
		t.Fatalf("DetectAs: %v", err)
	}
	if m.Channels() != 3 || m.Samples() != 2 {
		t.Fatalf("forced orientation gave %d channels / %d samples, want 3 / 2", m.Channels(), m.Samples())
	}
}

func TestFromRowsRaggedFails(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2, 3}, {1, 2}})
	if !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape for ragged rows, got %v", err)
	}
}

func TestFromRowsCopiesData(t *testing.T) {
	src := [][]float64{{1, 2, 3}}
	m, err := FromRows(src)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	src[0][0] = 99
	if m.Channel(0)[0] != 1 {
		t.Fatalf("FromRows must copy: channel 0 sample 0 = %v want 1", m.Channel(0)[0])
	}
}

func TestEmptyMatrixFails(t *testing.T) {
	_, err := FromRows(nil)
	if !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape for empty input, got %v", err)
	}
}
