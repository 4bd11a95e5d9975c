package gaussian

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// Jacobian is a linear factor Σₖ Aₖ xₖ = b over named continuous variables:
// one coefficient block Aₖ per key plus a shared right-hand side b. All
// blocks share the same row count, the factor's measurement dimension.
//
// Jacobian is immutable after construction and already linear: Linearize
// returns the receiver unchanged, at any point.
type Jacobian struct {
	name   string
	keys   []string
	blocks map[string]*mat.Dense
	rhs    *mat.VecDense
}

// NewJacobian builds a linear factor from terms and a right-hand side.
// An empty name is replaced with a generated UUID.
//
// Errors:
//   - ErrEmptyFactor  — terms is empty or rhs is nil.
//   - ErrDuplicateKey — the same key appears in two terms.
//   - ErrDimension    — a block's row count differs from len(rhs).
func NewJacobian(name string, terms []Term, rhs *mat.VecDense) (*Jacobian, error) {
	if len(terms) == 0 || rhs == nil {
		return nil, ErrEmptyFactor
	}
	if name == "" {
		name = uuid.NewString()
	}
	rows := rhs.Len()
	keys := make([]string, 0, len(terms))
	blocks := make(map[string]*mat.Dense, len(terms))
	for _, t := range terms {
		if _, dup := blocks[t.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, t.Key)
		}
		r, _ := t.A.Dims()
		if r != rows {
			return nil, fmt.Errorf("%w: block %q has %d rows, rhs has %d", ErrDimension, t.Key, r, rows)
		}
		keys = append(keys, t.Key)
		blocks[t.Key] = mat.DenseCopyOf(t.A)
	}

	return &Jacobian{
		name:   name,
		keys:   keys,
		blocks: blocks,
		rhs:    mat.VecDenseCopyOf(rhs),
	}, nil
}

// Name returns the factor identifier.
func (j *Jacobian) Name() string { return j.name }

// Keys returns the continuous variable keys in term order.
func (j *Jacobian) Keys() []string {
	out := make([]string, len(j.keys))
	copy(out, j.keys)

	return out
}

// Rows returns the measurement dimension.
func (j *Jacobian) Rows() int { return j.rhs.Len() }

// Block returns a copy of the coefficient block for key, and whether the
// key belongs to this factor.
func (j *Jacobian) Block(key string) (*mat.Dense, bool) {
	b, ok := j.blocks[key]
	if !ok {
		return nil, false
	}

	return mat.DenseCopyOf(b), true
}

// Rhs returns a copy of the right-hand side vector.
func (j *Jacobian) Rhs() *mat.VecDense { return mat.VecDenseCopyOf(j.rhs) }

// Residual evaluates Σₖ Aₖ xₖ − b at the given point.
//
// Errors:
//   - ErrMissingKey — the point lacks a value for one of the factor's keys.
//   - ErrDimension  — a supplied vector's length does not match its block.
func (j *Jacobian) Residual(p Point) (*mat.VecDense, error) {
	r := mat.NewVecDense(j.rhs.Len(), nil)
	for _, key := range j.keys {
		x, ok := p[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
		}
		a := j.blocks[key]
		_, cols := a.Dims()
		if x.Len() != cols {
			return nil, fmt.Errorf("%w: %q has length %d, block has %d columns", ErrDimension, key, x.Len(), cols)
		}
		ax := mat.NewVecDense(j.rhs.Len(), nil)
		ax.MulVec(a, x)
		r.AddVec(r, ax)
	}
	r.SubVec(r, j.rhs)

	return r, nil
}

// Linearize satisfies the continuous-factor capability; a Jacobian is its
// own linear form, so the receiver is returned for any point.
func (j *Jacobian) Linearize(Point) (Factor, error) { return j, nil }

// Equal reports structural equality with another Jacobian within tol:
// same keys in the same order, blocks and right-hand sides element-wise
// within tol. Names are ignored.
func (j *Jacobian) Equal(other any, tol float64) bool {
	o, ok := other.(*Jacobian)
	if !ok {
		return false
	}
	if len(j.keys) != len(o.keys) || j.rhs.Len() != o.rhs.Len() {
		return false
	}
	for i, key := range j.keys {
		if o.keys[i] != key {
			return false
		}
		if !mat.EqualApprox(j.blocks[key], o.blocks[key], tol) {
			return false
		}
	}

	return mat.EqualApprox(j.rhs, o.rhs, tol)
}
