package hybrid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mixgraph/gaussian"
)

// Linearize produces a NEW graph in which every continuous factor is
// replaced by its first-order linear form at point and every mixture factor
// has its leaves linearized at the same point. Discrete factors are carried
// over untouched. The receiver is never mutated.
//
// Shape guarantee: linearization changes only leaf content of a mixture —
// never its discrete scope, branching, or leaf count.
//
// The result's unified list orders factors continuous, discrete, then
// mixture (FromParts convention); per-collection insertion order is
// preserved.
//
// Errors: any error from an individual factor's linearization, wrapped with
// the factor's name.
func (g *Graph) Linearize(point gaussian.Point) (*Graph, error) {
	continuous := make([]ContinuousFactor, 0, len(g.continuous))
	for _, f := range g.continuous {
		lf, err := f.Linearize(point)
		if err != nil {
			return nil, fmt.Errorf("linearize factor %q: %w", f.Name(), err)
		}
		cf, ok := lf.(ContinuousFactor)
		if !ok {
			// A linear factor that does not itself expose the capability
			// still files as continuous through a pass-through adapter.
			cf = alreadyLinear{lf}
		}
		continuous = append(continuous, cf)
	}

	mixtures := make([]MixtureFactor, 0, len(g.mixtures))
	for _, m := range g.mixtures {
		lm, err := m.LinearizeLeaves(point)
		if err != nil {
			return nil, err
		}
		mixtures = append(mixtures, lm)
	}

	discrete := make([]DiscreteFactor, len(g.discrete))
	copy(discrete, g.discrete)

	g.log.Debug("graph linearized",
		zap.Int("continuous", len(continuous)),
		zap.Int("discrete", len(discrete)),
		zap.Int("mixtures", len(mixtures)),
	)

	return FromParts(continuous, discrete, mixtures, WithLogger(g.log)), nil
}

// alreadyLinear adapts a bare linear factor to the continuous capability;
// its linear form at any point is itself.
type alreadyLinear struct {
	gaussian.Factor
}

func (a alreadyLinear) Linearize(gaussian.Point) (gaussian.Factor, error) {
	return a.Factor, nil
}
