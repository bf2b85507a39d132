package signal

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewSet normalizes a list of matrices for comparison. The first matrix's
// detected orientation is imposed on every member (shapes must match, so one
// detection pass is enough), then channel and sample counts are checked
// against the first member. Index 0 is the primary set.
func NewSet(ms []mat.Matrix) ([]Matrix, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%w: empty signal set", ErrShape)
	}
	r, c := ms[0].Dims()
	orient := DetectOrientation(r, c)
	out := make([]Matrix, len(ms))
	for i, m := range ms {
		sm, err := DetectAs(m, orient)
		if err != nil {
			return nil, fmt.Errorf("set member %d: %w", i, err)
		}
		out[i] = sm
	}
	for i := 1; i < len(out); i++ {
		if out[i].Channels() != out[0].Channels() || out[i].Samples() != out[0].Samples() {
			return nil, fmt.Errorf("%w: set member %d is %dx%d, want %dx%d like member 0",
				ErrShape, i, out[i].Channels(), out[i].Samples(), out[0].Channels(), out[0].Samples())
		}
	}
	return out, nil
}
