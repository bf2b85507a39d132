// Package signal holds the data model shared by the plotting entry points: a
// channel-oriented view over a numeric matrix, and sets of same-shaped
// matrices used for comparisons.
package signal

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrShape is wrapped by every shape/orientation validation failure so callers
// can test with errors.Is.
var ErrShape = errors.New("signal: shape mismatch")

// Orientation says which matrix dimension carries the channels.
type Orientation int

const (
	RowsAreChannels Orientation = iota
	ColsAreChannels
)

func (o Orientation) String() string {
	if o == ColsAreChannels {
		return "columns"
	}
	return "rows"
}

// Matrix is a channel-oriented copy of a numeric matrix. Channels sit along
// the shorter input dimension; samples along the longer. The data is copied
// out of the source once so later draws never touch caller memory.
type Matrix struct {
	chans  [][]float64
	orient Orientation
}

// DetectOrientation applies the auto-detection rule to a shape: with r rows
// and c columns, rows are channels when r <= c (ties deliberately favour rows),
// otherwise columns are channels.
func DetectOrientation(r, c int) Orientation {
	if r <= c {
		return RowsAreChannels
	}
	return ColsAreChannels
}

// Detect builds a Matrix from m using orientation auto-detection.
func Detect(m mat.Matrix) (Matrix, error) {
	r, c := m.Dims()
	return DetectAs(m, DetectOrientation(r, c))
}

// DetectAs builds a Matrix from m with a caller-chosen orientation. Used by
// comparisons, where the first matrix's detected orientation is imposed on the
// rest of the set.
func DetectAs(m mat.Matrix, orient Orientation) (Matrix, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return Matrix{}, fmt.Errorf("%w: empty matrix (%dx%d)", ErrShape, r, c)
	}
	var nch, ns int
	if orient == RowsAreChannels {
		nch, ns = r, c
	} else {
		nch, ns = c, r
	}
	chans := make([][]float64, nch)
	for i := 0; i < nch; i++ {
		ch := make([]float64, ns)
		for j := 0; j < ns; j++ {
			if orient == RowsAreChannels {
				ch[j] = m.At(i, j)
			} else {
				ch[j] = m.At(j, i)
			}
		}
		chans[i] = ch
	}
	return Matrix{chans: chans, orient: orient}, nil
}

// FromRows builds a Matrix whose rows are already known to be channels. All
// rows must have the same (non-zero) length.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: no data", ErrShape)
	}
	ns := len(rows[0])
	chans := make([][]float64, len(rows))
	for i, r := range rows {
		if len(r) != ns {
			return Matrix{}, fmt.Errorf("%w: row %d has %d samples, want %d", ErrShape, i, len(r), ns)
		}
		chans[i] = append([]float64(nil), r...)
	}
	return Matrix{chans: chans, orient: RowsAreChannels}, nil
}

// Channels reports the number of channels (one subplot each).
func (m Matrix) Channels() int { return len(m.chans) }

// Samples reports the per-channel sample count.
func (m Matrix) Samples() int {
	if len(m.chans) == 0 {
		return 0
	}
	return len(m.chans[0])
}

// Channel returns channel i. The slice is owned by the Matrix; callers must
// not modify it.
func (m Matrix) Channel(i int) []float64 { return m.chans[i] }

// Orientation reports which input dimension was treated as channels.
func (m Matrix) Orientation() Orientation { return m.orient }
