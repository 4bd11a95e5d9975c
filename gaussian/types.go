// Package gaussian type and error declarations shared by Jacobian and
// Nonlinear factors.
package gaussian

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for linear-factor construction and evaluation.
var (
	// ErrEmptyFactor indicates a factor was constructed with no terms.
	ErrEmptyFactor = errors.New("gaussian: factor needs at least one term")

	// ErrDuplicateKey indicates the same continuous key appears twice in one
	// factor's term list.
	ErrDuplicateKey = errors.New("gaussian: duplicate continuous key")

	// ErrDimension indicates a row-count mismatch between coefficient blocks
	// and the right-hand side, or a column/vector length mismatch during
	// evaluation.
	ErrDimension = errors.New("gaussian: dimension mismatch")

	// ErrMissingKey indicates an evaluation point does not supply a value
	// for one of the factor's continuous keys.
	ErrMissingKey = errors.New("gaussian: evaluation point missing key")
)

// Point is an evaluation point for continuous variables: one value vector
// per variable key. Points are read-only from this package's perspective.
type Point map[string]*mat.VecDense

// Factor is a linear factor over named continuous variables. Implementations
// are immutable and compare structurally within a numeric tolerance.
type Factor interface {
	// Name returns the factor's identifier, assigned or generated at
	// construction.
	Name() string

	// Keys returns the continuous variable keys, in term order.
	Keys() []string

	// Equal reports structural equality with another factor within tol.
	// Names are not part of the comparison.
	Equal(other any, tol float64) bool
}

// Term pairs a continuous key with its coefficient block.
type Term struct {
	// Key names the continuous variable this block multiplies.
	Key string

	// A is the coefficient block; its row count must match the factor's
	// right-hand side.
	A *mat.Dense
}
