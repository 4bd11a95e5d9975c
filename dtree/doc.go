// Package dtree implements a generic finite-domain decision tree: a function
// from a joint assignment over discrete variables to a value of arbitrary
// leaf type V.
//
// A Tree[V] branches once per discrete variable along any root-to-leaf path,
// with exactly Var.Card children per branch. Trees are immutable after
// construction; every operation (Combine, Apply) returns a fresh tree and
// shares untouched subtrees with its operands instead of copying them.
//
// The package offers the following key components:
//
//   - Model primitives:
//     – Var:        a discrete variable — identifier plus cardinality.
//     – Assignment: one chosen state per variable of a scope.
//   - Construction:
//     – Leaf:       a constant tree with empty scope and a single leaf.
//     – New:        a full tree over a variable list from row-major leaves.
//   - Queries:
//     – At:         leaf lookup under a (possibly wider) assignment.
//     – Scope:      the tree's variables in the global order.
//     – Len:        number of joint assignments = product of cardinalities.
//     – Enumerate:  visit every (assignment, leaf) pair deterministically.
//   - Algebra:
//     – Apply:      map leaves through a function, preserving tree shape.
//     – Combine:    pointwise merge of two trees over possibly different
//       scopes; disjoint scopes extend by cross product, so the result's
//       scope is the union of the operands' scopes.
//     – Equal:      tolerant structural equality via a caller-supplied
//       leaf comparator.
//
// Global variable order:
//
// Every tree orders variables along its paths by ascending Var.ID. This one
// fixed order is what makes Combine over unequal scopes well-defined: both
// operands agree on where a shared variable sits, so the merge is a single
// synchronized descent instead of a search. New accepts variables in any
// order and normalizes internally.
//
// Guarantees:
//
//   - Combine is associative, and commutative up to the combining operator.
//   - Two operands declaring different cardinalities for the same variable
//     ID fail with ErrCardinality; the conflict is never resolved silently.
//   - Apply and Combine never mutate their inputs.
//
// Complexity: Combine over union scope U costs O(∏ card(U)) leaf visits in
// the worst case; Apply is linear in the number of tree nodes.
package dtree
