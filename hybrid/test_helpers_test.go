package hybrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mixgraph/dtree"
	"github.com/katalvlaran/mixgraph/gaussian"
	"github.com/katalvlaran/mixgraph/hybrid"
)

const tol = 1e-9

// prior builds the 1-D linear factor  a·key = b.
func prior(t *testing.T, key string, a, b float64) *gaussian.Jacobian {
	t.Helper()
	j, err := gaussian.NewJacobian("",
		[]gaussian.Term{{Key: key, A: mat.NewDense(1, 1, []float64{a})}},
		mat.NewVecDense(1, []float64{b}))
	require.NoError(t, err)

	return j
}

// binaryMixture builds a linear mixture over one binary variable with two
// prior leaves on key: state 0 → b0, state 1 → b1.
func binaryMixture(t *testing.T, name, varID, key string, b0, b1 float64) *hybrid.Mixture {
	t.Helper()
	m, err := hybrid.NewMixture(name,
		[]dtree.Var{{ID: varID, Card: 2}},
		[]gaussian.Factor{prior(t, key, 1, b0), prior(t, key, 1, b1)})
	require.NoError(t, err)

	return m
}

// table builds a discrete weight table over one variable.
func table(t *testing.T, name, varID string, weights ...float64) *hybrid.TableFactor {
	t.Helper()
	tf, err := hybrid.NewTableFactor(name,
		[]dtree.Var{{ID: varID, Card: len(weights)}}, weights)
	require.NoError(t, err)

	return tf
}

// dualFactor satisfies both the discrete and the mixture capability: a
// mixture that also announces its discrete scope as a plain discrete
// factor would. The router must file it into both sub-collections.
type dualFactor struct {
	hybrid.MixtureFactor
}

func (d dualFactor) Scope() []dtree.Var { return d.DiscreteVars() }

// bareFactor satisfies only the base capability; the router must reject it.
type bareFactor struct{ name string }

func (b bareFactor) Name() string            { return b.name }
func (b bareFactor) Equal(any, float64) bool { return false }

// brokenMixture claims the mixture capability but exposes no decision
// tree at all — the malformed-entry case Sum must reject.
type brokenMixture struct{ name string }

func (b brokenMixture) Name() string                          { return b.name }
func (b brokenMixture) Equal(any, float64) bool               { return false }
func (b brokenMixture) DiscreteVars() []dtree.Var             { return nil }
func (b brokenMixture) ContinuousKeys() []string              { return nil }
func (b brokenMixture) Mixture() *dtree.Tree[gaussian.Factor] { return nil }
func (b brokenMixture) LinearizeLeaves(gaussian.Point) (hybrid.MixtureFactor, error) {
	return b, nil
}
