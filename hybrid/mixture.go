package hybrid

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/mixgraph/dtree"
	"github.com/katalvlaran/mixgraph/gaussian"
)

// Mixture is a discrete-conditioned linear factor: a decision tree over the
// mixture's discrete scope whose leaves are linear factors, one per joint
// assignment. All leaves share the same continuous variable scope — only
// coefficients differ between discrete branches.
//
// Mixture is already linear, so LinearizeLeaves returns the receiver.
type Mixture struct {
	name string
	vars []dtree.Var
	keys []string
	tree *dtree.Tree[gaussian.Factor]
}

// NewMixture builds a linear mixture over vars from row-major leaves
// (dtree.New's convention: last variable in vars fastest). An empty name is
// replaced with a generated UUID.
//
// Errors:
//   - dtree.ErrBadShape — invalid scope or leaf count.
//   - ErrNilFactor      — a leaf is nil.
//   - ErrScopeMismatch  — two leaves reference different continuous scopes.
func NewMixture(name string, vars []dtree.Var, leaves []gaussian.Factor) (*Mixture, error) {
	for i, l := range leaves {
		if l == nil {
			return nil, fmt.Errorf("%w: leaf %d", ErrNilFactor, i)
		}
	}
	keys, err := sharedKeys(leaves)
	if err != nil {
		return nil, err
	}
	tree, err := dtree.New(vars, leaves)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = uuid.NewString()
	}
	scope := make([]dtree.Var, len(vars))
	copy(scope, vars)

	return &Mixture{name: name, vars: scope, keys: keys, tree: tree}, nil
}

// Name returns the factor identifier.
func (m *Mixture) Name() string { return m.name }

// DiscreteVars returns the mixture's discrete scope in declaration order.
func (m *Mixture) DiscreteVars() []dtree.Var {
	out := make([]dtree.Var, len(m.vars))
	copy(out, m.vars)

	return out
}

// ContinuousKeys returns the continuous scope shared by every leaf.
func (m *Mixture) ContinuousKeys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Mixture returns the decision tree of linear leaf factors.
func (m *Mixture) Mixture() *dtree.Tree[gaussian.Factor] { return m.tree }

// LinearizeLeaves returns the receiver: a linear mixture is its own linear
// form at every point.
func (m *Mixture) LinearizeLeaves(gaussian.Point) (MixtureFactor, error) { return m, nil }

// Equal reports whether other is a Mixture representing the same function:
// identical discrete scope and, per joint assignment, leaves equal within
// tol. Names are ignored.
func (m *Mixture) Equal(other any, tol float64) bool {
	o, ok := other.(*Mixture)
	if !ok {
		return false
	}

	return dtree.Equal(m.tree, o.tree, func(x, y gaussian.Factor) bool {
		return x.Equal(y, tol)
	})
}

// NonlinearMixture is a discrete-conditioned nonlinear factor: leaves are
// continuous factors that still need linearization. It carries no linear
// decision tree (Mixture returns nil) until LinearizeLeaves is called,
// which produces a Mixture with identical scope and shape.
type NonlinearMixture struct {
	name string
	vars []dtree.Var
	keys []string
	tree *dtree.Tree[ContinuousFactor]
}

// NewNonlinearMixture builds a nonlinear mixture over vars from row-major
// leaves. Validation matches NewMixture.
func NewNonlinearMixture(name string, vars []dtree.Var, leaves []ContinuousFactor) (*NonlinearMixture, error) {
	for i, l := range leaves {
		if l == nil {
			return nil, fmt.Errorf("%w: leaf %d", ErrNilFactor, i)
		}
	}
	keys, err := sharedKeys(leaves)
	if err != nil {
		return nil, err
	}
	tree, err := dtree.New(vars, leaves)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = uuid.NewString()
	}
	scope := make([]dtree.Var, len(vars))
	copy(scope, vars)

	return &NonlinearMixture{name: name, vars: scope, keys: keys, tree: tree}, nil
}

// Name returns the factor identifier.
func (m *NonlinearMixture) Name() string { return m.name }

// DiscreteVars returns the mixture's discrete scope in declaration order.
func (m *NonlinearMixture) DiscreteVars() []dtree.Var {
	out := make([]dtree.Var, len(m.vars))
	copy(out, m.vars)

	return out
}

// ContinuousKeys returns the continuous scope shared by every leaf.
func (m *NonlinearMixture) ContinuousKeys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Mixture returns nil: a nonlinear mixture has no linear tree until
// LinearizeLeaves runs.
func (m *NonlinearMixture) Mixture() *dtree.Tree[gaussian.Factor] { return nil }

// LinearizeLeaves linearizes every leaf at p. The result is a Mixture with
// the same name, discrete scope, and tree shape; only leaf content changes.
func (m *NonlinearMixture) LinearizeLeaves(p gaussian.Point) (MixtureFactor, error) {
	var firstErr error
	linear := dtree.Apply(m.tree, func(f ContinuousFactor) gaussian.Factor {
		if firstErr != nil {
			return nil
		}
		lf, err := f.Linearize(p)
		if err != nil {
			firstErr = err
			return nil
		}
		return lf
	})
	if firstErr != nil {
		return nil, fmt.Errorf("linearize mixture %q: %w", m.name, firstErr)
	}

	return &Mixture{
		name: m.name,
		vars: m.DiscreteVars(),
		keys: m.ContinuousKeys(),
		tree: linear,
	}, nil
}

// Equal reports whether other is a NonlinearMixture with the same discrete
// scope and pairwise-equal leaves.
func (m *NonlinearMixture) Equal(other any, tol float64) bool {
	o, ok := other.(*NonlinearMixture)
	if !ok {
		return false
	}

	return dtree.Equal(m.tree, o.tree, func(x, y ContinuousFactor) bool {
		return x.Equal(y, tol)
	})
}

// sharedKeys verifies all leaves reference one continuous scope (as a set)
// and returns the first leaf's key order.
func sharedKeys[F interface{ Keys() []string }](leaves []F) ([]string, error) {
	if len(leaves) == 0 {
		return nil, nil
	}
	first := leaves[0].Keys()
	for i, l := range leaves[1:] {
		if !sameKeySet(first, l.Keys()) {
			return nil, fmt.Errorf("%w: leaf 0 has %v, leaf %d has %v",
				ErrScopeMismatch, first, i+1, l.Keys())
		}
	}

	return first, nil
}

// sameKeySet compares two key slices as sets.
func sameKeySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]string, len(a))
	bs := make([]string, len(b))
	copy(as, a)
	copy(bs, b)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}
