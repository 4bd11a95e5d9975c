package hybrid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mixgraph/dtree"
	"github.com/katalvlaran/mixgraph/gaussian"
)

// Sum folds every mixture factor into a single decision tree whose leaves
// are linear-factor collections: for each joint discrete assignment, the
// leaf lists exactly the factors applicable under that assignment, in
// mixture insertion order.
//
// Algorithm Outline:
//  1. Start from the constant tree whose single leaf is the empty
//     collection (empty discrete scope).
//  2. For each mixture factor, in insertion order, Combine the accumulator
//     with the factor's tree using append-to-collection as the operator.
//     Operand scopes need not match: the union scope extends by cross
//     product, so each incoming leaf lands in every joint assignment whose
//     projection onto the factor's own scope selects it.
//
// Sum is pure: the graph is left untouched, including on failure. It must
// run sequentially — each merge depends on the accumulated scope so far.
//
// Errors:
//   - ErrUnsupportedFactor — a mixture entry carries no linear tree (for
//     example, a nonlinear mixture on a graph that was never linearized).
//     No partial result is returned.
//   - dtree.ErrCardinality — two mixtures disagree on a discrete variable's
//     cardinality.
func (g *Graph) Sum() (*dtree.Tree[gaussian.FactorGraph], error) {
	acc := dtree.Leaf(gaussian.FactorGraph(nil))
	for _, m := range g.mixtures {
		tree := m.Mixture()
		if tree == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFactor, m.Name())
		}
		var err error
		acc, err = dtree.Combine(acc, tree,
			func(collection gaussian.FactorGraph, f gaussian.Factor) gaussian.FactorGraph {
				return collection.Append(f)
			})
		if err != nil {
			return nil, fmt.Errorf("sum mixture %q: %w", m.Name(), err)
		}
	}

	g.log.Debug("mixtures summed",
		zap.Int("mixtures", len(g.mixtures)),
		zap.Int("assignments", acc.Len()),
	)

	return acc, nil
}
