package gaussian

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// Model evaluates a nonlinear measurement model at a point, returning the
// residual r(x) and one Jacobian block ∂r/∂xₖ per continuous key.
type Model func(p Point) (residual *mat.VecDense, jacobians map[string]*mat.Dense, err error)

// Nonlinear is a continuous factor defined by a measurement model callback.
// It is the library's stand-in for problem-specific nonlinear factors:
// robot odometry, range measurements, reprojection errors. Linearize
// performs the standard first-order expansion
//
//	r(x₀ + δ) ≈ r(x₀) + Σₖ Jₖ δₖ
//
// and returns the Jacobian factor  Σₖ Jₖ δₖ = −r(x₀).
type Nonlinear struct {
	name  string
	keys  []string
	model Model
}

// NewNonlinear builds a nonlinear factor over the given continuous keys.
// An empty name is replaced with a generated UUID.
//
// Errors:
//   - ErrEmptyFactor  — no keys, or a nil model.
//   - ErrDuplicateKey — a key is listed twice.
func NewNonlinear(name string, keys []string, model Model) (*Nonlinear, error) {
	if len(keys) == 0 || model == nil {
		return nil, ErrEmptyFactor
	}
	if name == "" {
		name = uuid.NewString()
	}
	seen := make(map[string]struct{}, len(keys))
	owned := make([]string, len(keys))
	for i, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
		owned[i] = k
	}

	return &Nonlinear{name: name, keys: owned, model: model}, nil
}

// Name returns the factor identifier.
func (n *Nonlinear) Name() string { return n.name }

// Keys returns the continuous variable keys.
func (n *Nonlinear) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)

	return out
}

// Linearize evaluates the model at p and assembles the first-order linear
// factor: blocks Jₖ(p) per key, right-hand side −r(p).
//
// Errors:
//   - ErrMissingKey — p lacks a value for one of the factor's keys, or the
//     model omitted a Jacobian block for a key.
//   - ErrDimension  — a Jacobian block's row count differs from the
//     residual's length.
//   - any error returned by the model itself, unwrapped.
func (n *Nonlinear) Linearize(p Point) (Factor, error) {
	for _, key := range n.keys {
		if _, ok := p[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
		}
	}
	residual, jacobians, err := n.model(p)
	if err != nil {
		return nil, err
	}
	terms := make([]Term, 0, len(n.keys))
	for _, key := range n.keys {
		jac, ok := jacobians[key]
		if !ok {
			return nil, fmt.Errorf("%w: model returned no Jacobian for %q", ErrMissingKey, key)
		}
		terms = append(terms, Term{Key: key, A: jac})
	}
	rhs := mat.NewVecDense(residual.Len(), nil)
	rhs.ScaleVec(-1, residual)

	return NewJacobian(n.name, terms, rhs)
}

// Equal reports whether other is a Nonlinear over the same keys in the same
// order. Model callbacks have no usable identity, so they do not
// participate in the comparison.
func (n *Nonlinear) Equal(other any, _ float64) bool {
	o, ok := other.(*Nonlinear)
	if !ok || len(n.keys) != len(o.keys) {
		return false
	}
	for i, key := range n.keys {
		if o.keys[i] != key {
			return false
		}
	}

	return true
}
