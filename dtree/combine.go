package dtree

import "fmt"

// Apply — shape-preserving leaf map
//
// Apply returns a new tree with the same scope and branching as t, where
// every leaf value has been replaced by f(value). The input tree is not
// mutated.
//
// Complexity: O(nodes of t).
func Apply[V, W any](t *Tree[V], f func(V) W) *Tree[W] {
	if t == nil {
		return nil
	}

	return &Tree[W]{root: applyNode(t.root, f)}
}

func applyNode[V, W any](n node[V], f func(V) W) node[W] {
	switch x := n.(type) {
	case leaf[V]:
		return leaf[W]{value: f(x.value)}
	case *choice[V]:
		children := make([]node[W], len(x.children))
		for i, c := range x.children {
			children[i] = applyNode(c, f)
		}
		return &choice[W]{v: x.v, children: children}
	default:
		return nil // unreachable: node is sealed to leaf and choice
	}
}

// Combine — pointwise merge over possibly different scopes
//
// Description:
//
//	Combine merges two trees into one whose scope is the UNION of the
//	operands' scopes. For every joint assignment over the union, the
//	resulting leaf is
//
//	    op(a.At(projection onto a's scope), b.At(projection onto b's scope))
//
//	Disjoint scopes therefore extend by cross product: combining a tree
//	over A (card 2) with a tree over B (card 3) yields a tree with 6
//	joint-assignment leaves. Shared variables are descended in lock-step.
//
// Algorithm Outline:
//  1. Both nodes are leaves → emit op(leafA, leafB).
//  2. One node is a leaf → branch on the other node's variable and recurse
//     the leaf against every child (cross-product extension).
//  3. Both are choices on the same variable ID → cardinalities must match
//     (ErrCardinality otherwise); recurse child i against child i.
//  4. Both are choices on different IDs → branch on whichever variable
//     comes first in the global order and recurse the other tree whole.
//
// Both operands must follow the global variable order (trees built by this
// package always do), which makes step 4 a single synchronized descent.
//
// Guarantees:
//   - Associative: Combine(Combine(a,b),c) equals Combine(a,Combine(b,c))
//     whenever op itself is associative.
//   - Non-destructive: neither operand is mutated; untouched subtrees of
//     the operands may be shared by reference, never copied.
//
// Errors:
//   - ErrNilTree     — either operand is nil.
//   - ErrCardinality — operands disagree on a shared variable's cardinality.
//
// Complexity: O(∏ card(union scope)) leaf combinations in the worst case.
func Combine[L, R, O any](a *Tree[L], b *Tree[R], op func(L, R) O) (*Tree[O], error) {
	if a == nil || b == nil {
		return nil, ErrNilTree
	}
	root, err := combineNodes(a.root, b.root, op)
	if err != nil {
		return nil, err
	}

	return &Tree[O]{root: root}, nil
}

func combineNodes[L, R, O any](a node[L], b node[R], op func(L, R) O) (node[O], error) {
	la, aLeaf := a.(leaf[L])
	lb, bLeaf := b.(leaf[R])

	switch {
	case aLeaf && bLeaf:
		return leaf[O]{value: op(la.value, lb.value)}, nil

	case aLeaf:
		// Extend the left leaf across every branch of the right tree.
		cb := b.(*choice[R])
		return combineAcross(cb.v, len(cb.children), func(i int) (node[O], error) {
			return combineNodes(a, cb.children[i], op)
		})

	case bLeaf:
		ca := a.(*choice[L])
		return combineAcross(ca.v, len(ca.children), func(i int) (node[O], error) {
			return combineNodes(ca.children[i], b, op)
		})

	default:
		ca := a.(*choice[L])
		cb := b.(*choice[R])
		switch {
		case ca.v.ID == cb.v.ID:
			if ca.v.Card != cb.v.Card {
				return nil, fmt.Errorf("%w: %q has cardinality %d vs %d",
					ErrCardinality, ca.v.ID, ca.v.Card, cb.v.Card)
			}
			return combineAcross(ca.v, len(ca.children), func(i int) (node[O], error) {
				return combineNodes(ca.children[i], cb.children[i], op)
			})
		case ca.v.ID < cb.v.ID:
			return combineAcross(ca.v, len(ca.children), func(i int) (node[O], error) {
				return combineNodes(ca.children[i], b, op)
			})
		default:
			return combineAcross(cb.v, len(cb.children), func(i int) (node[O], error) {
				return combineNodes(a, cb.children[i], op)
			})
		}
	}
}

// combineAcross builds one choice layer on v from per-state child builders.
func combineAcross[O any](v Var, n int, child func(int) (node[O], error)) (node[O], error) {
	children := make([]node[O], n)
	for i := 0; i < n; i++ {
		c, err := child(i)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}

	return &choice[O]{v: v, children: children}, nil
}
