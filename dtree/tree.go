package dtree

import (
	"fmt"
	"sort"
)

// Leaf returns a constant tree: empty scope, one leaf holding value.
// It is the neutral starting point for a fold of Combine calls.
func Leaf[V any](value V) *Tree[V] {
	return &Tree[V]{root: leaf[V]{value: value}}
}

// New builds a full tree over vars from a flat slice of leaves.
//
// Leaves are given in row-major assignment order with respect to the order
// of vars as passed: the LAST variable in vars varies fastest. For
// vars = [A(2), B(3)] the expected order is
//
//	(A=0,B=0) (A=0,B=1) (A=0,B=2) (A=1,B=0) (A=1,B=1) (A=1,B=2)
//
// Internally the tree normalizes variables into the global order (ascending
// Var.ID); callers never need to pre-sort.
//
// Errors:
//   - ErrBadShape — a cardinality < 1, a duplicate variable ID, or
//     len(leaves) != product of cardinalities.
func New[V any](vars []Var, leaves []V) (*Tree[V], error) {
	total := 1
	seen := make(map[string]int, len(vars))
	for _, v := range vars {
		if v.Card < 1 {
			return nil, fmt.Errorf("%w: variable %q has cardinality %d", ErrBadShape, v.ID, v.Card)
		}
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrBadShape, v.ID)
		}
		seen[v.ID] = v.Card
		total *= v.Card
	}
	if len(leaves) != total {
		return nil, fmt.Errorf("%w: want %d leaves, got %d", ErrBadShape, total, len(leaves))
	}

	// Row-major strides with respect to the caller's variable order.
	stride := make(map[string]int, len(vars))
	s := 1
	for i := len(vars) - 1; i >= 0; i-- {
		stride[vars[i].ID] = s
		s *= vars[i].Card
	}

	ordered := sortedVars(vars)

	return &Tree[V]{root: build(ordered, stride, 0, leaves)}, nil
}

// build constructs the node layer for ordered[0], offsetting into leaves by
// the caller-order strides so the tree can branch in global order while the
// leaf slice stays in the caller's row-major order.
func build[V any](ordered []Var, stride map[string]int, base int, leaves []V) node[V] {
	if len(ordered) == 0 {
		return leaf[V]{value: leaves[base]}
	}
	v := ordered[0]
	children := make([]node[V], v.Card)
	for s := 0; s < v.Card; s++ {
		children[s] = build(ordered[1:], stride, base+s*stride[v.ID], leaves)
	}

	return &choice[V]{v: v, children: children}
}

// Scope returns the tree's variables in the global order (ascending ID).
// The returned slice is owned by the caller.
func (t *Tree[V]) Scope() []Var {
	acc := make(map[string]int)
	scopeOf[V](t.root, acc)
	out := make([]Var, 0, len(acc))
	for id, card := range acc {
		out = append(out, Var{ID: id, Card: card})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func scopeOf[V any](n node[V], acc map[string]int) {
	c, ok := n.(*choice[V])
	if !ok {
		return
	}
	acc[c.v.ID] = c.v.Card
	for _, child := range c.children {
		scopeOf[V](child, acc)
	}
}

// Len returns the number of distinct joint assignments over the tree's
// scope: the product of all scope cardinalities. A constant tree has Len 1.
func (t *Tree[V]) Len() int {
	total := 1
	for _, v := range t.Scope() {
		total *= v.Card
	}

	return total
}

// At returns the leaf selected by the given assignment. The assignment may
// cover a superset of the tree's scope; surplus variables are ignored.
//
// Errors:
//   - ErrIncompleteAssignment — a variable tested along the path is absent.
//   - ErrStateRange           — a state index is outside [0, Card).
func (t *Tree[V]) At(a Assignment) (V, error) {
	n := t.root
	for {
		switch x := n.(type) {
		case leaf[V]:
			return x.value, nil
		case *choice[V]:
			s, ok := a[x.v.ID]
			if !ok {
				var zero V
				return zero, fmt.Errorf("%w: missing %q", ErrIncompleteAssignment, x.v.ID)
			}
			if s < 0 || s >= x.v.Card {
				var zero V
				return zero, fmt.Errorf("%w: %q=%d, cardinality %d", ErrStateRange, x.v.ID, s, x.v.Card)
			}
			n = x.children[s]
		}
	}
}

// Enumerate visits every joint assignment over the tree's scope together
// with its leaf value, in row-major order over Scope() (last scope variable
// varies fastest). The assignment passed to fn is reused between calls;
// Clone it if it must outlive the visit. Enumeration stops at the first
// non-nil error from fn and returns it.
func (t *Tree[V]) Enumerate(fn func(Assignment, V) error) error {
	scope := t.Scope()
	states := make([]int, len(scope))
	a := make(Assignment, len(scope))
	for {
		for i, v := range scope {
			a[v.ID] = states[i]
		}
		value, err := t.At(a)
		if err != nil {
			return err
		}
		if err = fn(a, value); err != nil {
			return err
		}
		// Odometer step: last variable fastest.
		i := len(scope) - 1
		for ; i >= 0; i-- {
			states[i]++
			if states[i] < scope[i].Card {
				break
			}
			states[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

// Equal reports whether a and b represent the same function: identical
// scopes (IDs and cardinalities) and leaves equal under eq at every joint
// assignment. Shape differences that do not change the function (shared vs
// duplicated subtrees) do not affect the result.
func Equal[V any](a, b *Tree[V], eq func(x, y V) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	sa, sb := a.Scope(), b.Scope()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	same := true
	_ = a.Enumerate(func(at Assignment, x V) error {
		y, err := b.At(at)
		if err != nil || !eq(x, y) {
			same = false
			return errStopEnumerate
		}
		return nil
	})

	return same
}

// errStopEnumerate aborts Enumerate early; never returned to callers.
var errStopEnumerate = fmt.Errorf("dtree: stop")

// sortedVars returns a copy of vars in the global order.
func sortedVars(vars []Var) []Var {
	out := make([]Var, len(vars))
	copy(out, vars)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
