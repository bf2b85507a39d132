package sigplot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/e-pet/plot-signals/src/signal"
)

// CompareSignals overlays several same-shaped signal matrices channel by
// channel: the first matrix anchors each subplot, the remaining matrices are
// drawn over it as reference curves. All other options are forwarded to
// PlotSignals unchanged.
func CompareSignals(signalSets []mat.Matrix, cfg Config) (*Figure, []*Subplot, error) {
	set, err := signal.NewSet(signalSets)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MatLabels != nil && len(cfg.MatLabels) != len(set) {
		return nil, nil, fmt.Errorf("%w: %d mat labels for %d signal sets", ErrConfig, len(cfg.MatLabels), len(set))
	}

	primary := set[0]
	nch := primary.Channels()

	// Reference block per channel: channel i of every non-primary matrix,
	// in set order. Shapes were validated above, so this is a plain loop.
	refs := make([][]refSignal, nch)
	for i := 0; i < nch; i++ {
		chRefs := make([]refSignal, 0, len(set)-1)
		for k := 1; k < len(set); k++ {
			chRefs = append(chRefs, refSignal{
				name: setLabel(cfg, k),
				y:    set[k].Channel(i),
			})
		}
		refs[i] = chRefs
	}
	cfg.refs = refs
	return PlotSignals(primary, cfg)
}
