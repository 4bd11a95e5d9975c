package dtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mixgraph/dtree"
)

// TestNew_BadCardinality verifies that a non-positive cardinality is rejected.
func TestNew_BadCardinality(t *testing.T) {
	_, err := dtree.New([]dtree.Var{{ID: "a", Card: 0}}, []int{})
	assert.ErrorIs(t, err, dtree.ErrBadShape, "cardinality 0 must error ErrBadShape")
}

// TestNew_DuplicateVariable verifies that a repeated variable ID is rejected.
func TestNew_DuplicateVariable(t *testing.T) {
	vars := []dtree.Var{{ID: "a", Card: 2}, {ID: "a", Card: 2}}
	_, err := dtree.New(vars, []int{0, 1, 2, 3})
	assert.ErrorIs(t, err, dtree.ErrBadShape, "duplicate ID must error ErrBadShape")
}

// TestNew_LeafCountMismatch verifies the leaf slice must have exactly
// product-of-cardinalities entries.
func TestNew_LeafCountMismatch(t *testing.T) {
	vars := []dtree.Var{{ID: "a", Card: 2}, {ID: "b", Card: 3}}
	_, err := dtree.New(vars, []int{1, 2, 3})
	assert.ErrorIs(t, err, dtree.ErrBadShape, "3 leaves for a 2x3 scope must error")
}

// TestNew_RowMajorLookup checks that leaves are addressed row-major with the
// last declared variable varying fastest.
func TestNew_RowMajorLookup(t *testing.T) {
	vars := []dtree.Var{{ID: "a", Card: 2}, {ID: "b", Card: 3}}
	tr, err := dtree.New(vars, []int{0, 1, 2, 10, 11, 12})
	require.NoError(t, err, "well-formed construction should not error")

	got, err := tr.At(dtree.Assignment{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, 12, got, "leaf (a=1,b=2) must be the last row-major entry")

	got, err = tr.At(dtree.Assignment{"a": 0, "b": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, got, "leaf (a=0,b=1) must be the second row-major entry")
}

// TestNew_UnsortedVariableOrder checks that construction order does not
// change the represented function: the tree normalizes to the global order.
func TestNew_UnsortedVariableOrder(t *testing.T) {
	// Same function declared with variables in two different orders.
	ab, err := dtree.New([]dtree.Var{{ID: "a", Card: 2}, {ID: "b", Card: 2}},
		[]int{1, 2, 3, 4}) // (a,b): 00→1 01→2 10→3 11→4
	require.NoError(t, err)
	ba, err := dtree.New([]dtree.Var{{ID: "b", Card: 2}, {ID: "a", Card: 2}},
		[]int{1, 3, 2, 4}) // (b,a): 00→1 01→3 10→2 11→4
	require.NoError(t, err)

	assert.True(t, dtree.Equal(ab, ba, func(x, y int) bool { return x == y }),
		"declaration order must not change the function")
	assert.Equal(t, []dtree.Var{{ID: "a", Card: 2}, {ID: "b", Card: 2}}, ba.Scope(),
		"scope must come back in the global order")
}

// TestLeaf_ConstantTree verifies the empty-scope constant tree.
func TestLeaf_ConstantTree(t *testing.T) {
	tr := dtree.Leaf("only")
	assert.Empty(t, tr.Scope(), "constant tree has empty scope")
	assert.Equal(t, 1, tr.Len(), "constant tree has exactly one assignment")

	got, err := tr.At(dtree.Assignment{})
	require.NoError(t, err, "empty assignment selects the single leaf")
	assert.Equal(t, "only", got)
}

// TestAt_IncompleteAssignment verifies the missing-variable error path.
func TestAt_IncompleteAssignment(t *testing.T) {
	tr, err := dtree.New([]dtree.Var{{ID: "m", Card: 2}}, []int{5, 6})
	require.NoError(t, err)

	_, err = tr.At(dtree.Assignment{})
	assert.ErrorIs(t, err, dtree.ErrIncompleteAssignment, "missing variable must error")
}

// TestAt_StateOutOfRange verifies the state-range error path.
func TestAt_StateOutOfRange(t *testing.T) {
	tr, err := dtree.New([]dtree.Var{{ID: "m", Card: 2}}, []int{5, 6})
	require.NoError(t, err)

	_, err = tr.At(dtree.Assignment{"m": 2})
	assert.ErrorIs(t, err, dtree.ErrStateRange, "state 2 with cardinality 2 must error")
}

// TestAt_IgnoresSurplusVariables verifies projection semantics: extra
// assignment entries outside the tree's scope are ignored.
func TestAt_IgnoresSurplusVariables(t *testing.T) {
	tr, err := dtree.New([]dtree.Var{{ID: "m", Card: 2}}, []int{5, 6})
	require.NoError(t, err)

	got, err := tr.At(dtree.Assignment{"m": 1, "unrelated": 7})
	require.NoError(t, err, "surplus variables must not affect lookup")
	assert.Equal(t, 6, got)
}

// TestEnumerate_OrderAndCount verifies deterministic row-major enumeration
// over the sorted scope, last variable fastest.
func TestEnumerate_OrderAndCount(t *testing.T) {
	vars := []dtree.Var{{ID: "a", Card: 2}, {ID: "b", Card: 2}}
	tr, err := dtree.New(vars, []int{0, 1, 10, 11})
	require.NoError(t, err)

	var values []int
	err = tr.Enumerate(func(_ dtree.Assignment, v int) error {
		values = append(values, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 10, 11}, values, "enumeration must be row-major, b fastest")
}

// TestEqual_DifferentScopes verifies that trees over different scopes are
// never equal, even if their leaf multisets coincide.
func TestEqual_DifferentScopes(t *testing.T) {
	ta, err := dtree.New([]dtree.Var{{ID: "a", Card: 2}}, []int{1, 1})
	require.NoError(t, err)
	tb, err := dtree.New([]dtree.Var{{ID: "b", Card: 2}}, []int{1, 1})
	require.NoError(t, err)

	eq := func(x, y int) bool { return x == y }
	assert.False(t, dtree.Equal(ta, tb, eq), "same leaves over different scopes are not equal")
	assert.True(t, dtree.Equal(ta, ta, eq), "a tree equals itself")
}
