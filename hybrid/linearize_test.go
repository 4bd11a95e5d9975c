package hybrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mixgraph/dtree"
	"github.com/katalvlaran/mixgraph/gaussian"
	"github.com/katalvlaran/mixgraph/hybrid"
)

// rangeModel is the scalar range measurement r(x) = x² − 4, Jacobian 2x.
func rangeModel(p gaussian.Point) (*mat.VecDense, map[string]*mat.Dense, error) {
	x := p["x"].AtVec(0)

	return mat.NewVecDense(1, []float64{x*x - 4}),
		map[string]*mat.Dense{"x": mat.NewDense(1, 1, []float64{2 * x})},
		nil
}

// nonlinearLeaf builds a nonlinear continuous factor on key "x".
func nonlinearLeaf(t *testing.T, name string) *gaussian.Nonlinear {
	t.Helper()
	f, err := gaussian.NewNonlinear(name, []string{"x"}, rangeModel)
	require.NoError(t, err)

	return f
}

// TestLinearize_ReplacesContinuousFactors verifies a nonlinear continuous
// factor becomes a Jacobian at the evaluation point.
func TestLinearize_ReplacesContinuousFactors(t *testing.T) {
	g := hybrid.NewGraph()
	require.NoError(t, g.Add(nonlinearLeaf(t, "range")))
	point := gaussian.Point{"x": mat.NewVecDense(1, []float64{3})}

	lg, err := g.Linearize(point)
	require.NoError(t, err)

	require.Equal(t, 1, lg.NrContinuous())
	j, ok := lg.ContinuousFactors()[0].(*gaussian.Jacobian)
	require.True(t, ok, "linearized continuous factor must be a Jacobian")
	block, _ := j.Block("x")
	assert.InDelta(t, 6.0, block.At(0, 0), tol, "Jacobian evaluated at x₀=3")

	// The source graph still holds the nonlinear factor.
	_, stillNonlinear := g.ContinuousFactors()[0].(*gaussian.Nonlinear)
	assert.True(t, stillNonlinear, "Linearize must not mutate the receiver")
}

// TestLinearize_ShapePreservation verifies a 4-leaf nonlinear mixture
// linearizes to a 4-leaf linear mixture with an identical discrete scope.
func TestLinearize_ShapePreservation(t *testing.T) {
	vars := []dtree.Var{{ID: "a", Card: 2}, {ID: "b", Card: 2}}
	leaves := []hybrid.ContinuousFactor{
		nonlinearLeaf(t, "l00"), nonlinearLeaf(t, "l01"),
		nonlinearLeaf(t, "l10"), nonlinearLeaf(t, "l11"),
	}
	nm, err := hybrid.NewNonlinearMixture("nm", vars, leaves)
	require.NoError(t, err)
	require.Nil(t, nm.Mixture(), "nonlinear mixture carries no linear tree")

	g := hybrid.NewGraph()
	require.NoError(t, g.Add(nm))

	lg, err := g.Linearize(gaussian.Point{"x": mat.NewVecDense(1, []float64{1})})
	require.NoError(t, err)

	lm := lg.MixtureFactors()[0]
	tree := lm.Mixture()
	require.NotNil(t, tree, "linearized mixture must expose its linear tree")
	assert.Equal(t, 4, tree.Len(), "leaf count preserved")
	assert.Equal(t, vars, lm.DiscreteVars(), "discrete scope preserved")
	assert.Equal(t, []string{"x"}, lm.ContinuousKeys(), "continuous scope preserved")

	// Each leaf is the linear form of the original leaf at the same point.
	leafF, err := tree.At(dtree.Assignment{"a": 0, "b": 1})
	require.NoError(t, err)
	j, ok := leafF.(*gaussian.Jacobian)
	require.True(t, ok)
	assert.Equal(t, "l01", j.Name(), "leaf identity preserved through linearization")
}

// TestLinearize_LinearGraphRoundTrip verifies an already-linear graph
// linearizes to an equal graph (pass-through of Jacobians and Mixtures).
func TestLinearize_LinearGraphRoundTrip(t *testing.T) {
	g := hybrid.NewGraph()
	require.NoError(t, g.Add(prior(t, "x", 1, 0)))
	require.NoError(t, g.Add(table(t, "tm", "m", 0.4, 0.6)))
	require.NoError(t, g.Add(binaryMixture(t, "mix", "m", "x", 1, 2)))

	lg, err := g.Linearize(gaussian.Point{"x": mat.NewVecDense(1, []float64{0})})
	require.NoError(t, err)

	assert.True(t, g.Equals(lg, tol), "linear content passes through unchanged")
}

// TestLinearize_PropagatesLeafErrors verifies a failing leaf model aborts
// the whole pass.
func TestLinearize_PropagatesLeafErrors(t *testing.T) {
	boom := errors.New("bad model")
	bad, err := gaussian.NewNonlinear("bad", []string{"x"},
		func(gaussian.Point) (*mat.VecDense, map[string]*mat.Dense, error) {
			return nil, nil, boom
		})
	require.NoError(t, err)
	nm, err := hybrid.NewNonlinearMixture("nm",
		[]dtree.Var{{ID: "m", Card: 2}},
		[]hybrid.ContinuousFactor{bad, bad})
	require.NoError(t, err)

	g := hybrid.NewGraph()
	require.NoError(t, g.Add(nm))

	_, err = g.Linearize(gaussian.Point{"x": mat.NewVecDense(1, []float64{0})})
	assert.ErrorIs(t, err, boom, "leaf model failure must propagate")
}

// TestNewMixture_ScopeMismatch verifies the shared-continuous-scope
// invariant across mixture leaves.
func TestNewMixture_ScopeMismatch(t *testing.T) {
	_, err := hybrid.NewMixture("bad",
		[]dtree.Var{{ID: "m", Card: 2}},
		[]gaussian.Factor{prior(t, "x", 1, 0), prior(t, "y", 1, 0)})
	assert.ErrorIs(t, err, hybrid.ErrScopeMismatch, "leaves over different keys must be rejected")
}
