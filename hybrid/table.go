package hybrid

import (
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/mixgraph/dtree"
)

// TableFactor is a discrete factor: a non-negative weight per joint
// assignment over its scope, stored as a decision tree with float64 leaves.
// Discrete elimination mechanics live downstream; within this package a
// TableFactor contributes its scope to routing and scope-union queries and
// compares within tolerance.
type TableFactor struct {
	name  string
	scope []dtree.Var
	table *dtree.Tree[float64]
}

// NewTableFactor builds a discrete weight table over vars. Weights follow
// dtree.New's row-major convention (last variable in vars fastest). An
// empty name is replaced with a generated UUID.
//
// Errors: dtree.ErrBadShape on invalid scope or weight count.
func NewTableFactor(name string, vars []dtree.Var, weights []float64) (*TableFactor, error) {
	table, err := dtree.New(vars, weights)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = uuid.NewString()
	}
	scope := make([]dtree.Var, len(vars))
	copy(scope, vars)

	return &TableFactor{name: name, scope: scope, table: table}, nil
}

// Name returns the factor identifier.
func (t *TableFactor) Name() string { return t.name }

// Scope returns the discrete variables in declaration order.
func (t *TableFactor) Scope() []dtree.Var {
	out := make([]dtree.Var, len(t.scope))
	copy(out, t.scope)

	return out
}

// Weight returns the table entry for the given assignment.
func (t *TableFactor) Weight(a dtree.Assignment) (float64, error) {
	return t.table.At(a)
}

// Equal reports whether other is a TableFactor representing the same
// weight function within tol. Names are ignored.
func (t *TableFactor) Equal(other any, tol float64) bool {
	o, ok := other.(*TableFactor)
	if !ok {
		return false
	}

	return dtree.Equal(t.table, o.table, func(x, y float64) bool {
		return math.Abs(x-y) <= tol
	})
}
