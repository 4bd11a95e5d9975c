package hybrid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mixgraph/dtree"
)

// Graph is the hybrid factor container: three typed sub-collections plus a
// unified list preserving insertion order. Construct with NewGraph or
// FromParts; mutate only through the Add family and Clear.
//
// A Graph is not safe for concurrent mutation; see the package
// documentation for the sanctioned parallel-construction pattern.
type Graph struct {
	continuous []ContinuousFactor
	discrete   []DiscreteFactor
	mixtures   []MixtureFactor

	// ordered lists every added factor exactly once, in insertion order,
	// regardless of how many sub-collections it was filed into.
	ordered []Factor

	log *zap.Logger
}

// NewGraph returns an empty hybrid graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromParts builds a graph from three pre-built sub-collections. The
// unified list concatenates continuous, discrete, then mixture factors.
// Input slices are copied.
func FromParts(continuous []ContinuousFactor, discrete []DiscreteFactor, mixtures []MixtureFactor, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	g.continuous = append(g.continuous, continuous...)
	g.discrete = append(g.discrete, discrete...)
	g.mixtures = append(g.mixtures, mixtures...)
	g.ordered = make([]Factor, 0, len(continuous)+len(discrete)+len(mixtures))
	for _, f := range continuous {
		g.ordered = append(g.ordered, f)
	}
	for _, f := range discrete {
		g.ordered = append(g.ordered, f)
	}
	for _, f := range mixtures {
		g.ordered = append(g.ordered, f)
	}

	return g
}

// Add routes a factor into every sub-collection whose capability it
// satisfies and appends it once to the unified list. Adding the same
// factor again files it again; there is no deduplication.
//
// Errors:
//   - ErrNilFactor     — f is nil.
//   - ErrUnknownFactor — f satisfies no recognized capability; the graph is
//     left unchanged.
func (g *Graph) Add(f Factor) error {
	if f == nil {
		return ErrNilFactor
	}

	d, isDiscrete := f.(DiscreteFactor)
	c, isContinuous := f.(ContinuousFactor)
	m, isMixture := f.(MixtureFactor)
	if !isDiscrete && !isContinuous && !isMixture {
		return fmt.Errorf("%w: %q", ErrUnknownFactor, f.Name())
	}

	if isDiscrete {
		g.discrete = append(g.discrete, d)
	}
	if isContinuous {
		g.continuous = append(g.continuous, c)
	}
	if isMixture {
		g.mixtures = append(g.mixtures, m)
	}
	g.ordered = append(g.ordered, f)

	g.log.Debug("factor routed",
		zap.String("factor", f.Name()),
		zap.Bool("discrete", isDiscrete),
		zap.Bool("continuous", isContinuous),
		zap.Bool("mixture", isMixture),
	)

	return nil
}

// AddAll routes each factor in order. It stops at the first failure;
// factors added before the failing one stay filed.
func (g *Graph) AddAll(factors ...Factor) error {
	for _, f := range factors {
		if err := g.Add(f); err != nil {
			return err
		}
	}

	return nil
}

// Size returns the number of added factors, counting each factor once even
// when it was filed into several sub-collections.
func (g *Graph) Size() int { return len(g.ordered) }

// NrContinuous returns the continuous sub-collection's size.
func (g *Graph) NrContinuous() int { return len(g.continuous) }

// NrDiscrete returns the discrete sub-collection's size.
func (g *Graph) NrDiscrete() int { return len(g.discrete) }

// NrMixtures returns the mixture sub-collection's size.
func (g *Graph) NrMixtures() int { return len(g.mixtures) }

// Factors returns the unified list in insertion order. The slice is owned
// by the caller.
func (g *Graph) Factors() []Factor {
	out := make([]Factor, len(g.ordered))
	copy(out, g.ordered)

	return out
}

// ContinuousFactors returns the continuous sub-collection in insertion
// order. The slice is owned by the caller.
func (g *Graph) ContinuousFactors() []ContinuousFactor {
	out := make([]ContinuousFactor, len(g.continuous))
	copy(out, g.continuous)

	return out
}

// DiscreteFactors returns the discrete sub-collection in insertion order.
func (g *Graph) DiscreteFactors() []DiscreteFactor {
	out := make([]DiscreteFactor, len(g.discrete))
	copy(out, g.discrete)

	return out
}

// MixtureFactors returns the mixture sub-collection in insertion order.
func (g *Graph) MixtureFactors() []MixtureFactor {
	out := make([]MixtureFactor, len(g.mixtures))
	copy(out, g.mixtures)

	return out
}

// DiscreteVars returns the union of discrete variables referenced by the
// discrete and mixture sub-collections, deduplicated by ID, in order of
// first appearance (discrete factors first, then mixtures, each in
// insertion order).
func (g *Graph) DiscreteVars() []dtree.Var {
	seen := make(map[string]struct{})
	var out []dtree.Var
	collect := func(vars []dtree.Var) {
		for _, v := range vars {
			if _, ok := seen[v.ID]; ok {
				continue
			}
			seen[v.ID] = struct{}{}
			out = append(out, v)
		}
	}
	for _, f := range g.discrete {
		collect(f.Scope())
	}
	for _, f := range g.mixtures {
		collect(f.DiscreteVars())
	}

	return out
}

// Equals reports whether both graphs hold equal sub-collections: matching
// sizes and element-wise factor equality within tol, in insertion order.
func (g *Graph) Equals(other *Graph, tol float64) bool {
	if other == nil {
		return false
	}
	if len(g.ordered) != len(other.ordered) ||
		len(g.continuous) != len(other.continuous) ||
		len(g.discrete) != len(other.discrete) ||
		len(g.mixtures) != len(other.mixtures) {
		return false
	}
	for i, f := range g.continuous {
		if !f.Equal(other.continuous[i], tol) {
			return false
		}
	}
	for i, f := range g.discrete {
		if !f.Equal(other.discrete[i], tol) {
			return false
		}
	}
	for i, f := range g.mixtures {
		if !f.Equal(other.mixtures[i], tol) {
			return false
		}
	}

	return true
}

// Clear empties all sub-collections and the unified list. Factor objects
// previously handed out by reference remain valid; they are merely no
// longer listed.
func (g *Graph) Clear() {
	g.continuous = nil
	g.discrete = nil
	g.mixtures = nil
	g.ordered = nil
	g.log.Debug("graph cleared")
}
