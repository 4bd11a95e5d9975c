// Package dtree type and error declarations.
//
// This file declares Var, Assignment, the Tree node representation, and the
// sentinel errors shared by construction and algebra operations.
package dtree

import "errors"

// Sentinel errors for decision-tree operations.
var (
	// ErrBadShape indicates invalid construction input: a non-positive
	// cardinality, a duplicate variable ID, or a leaf slice whose length is
	// not the product of the cardinalities.
	ErrBadShape = errors.New("dtree: malformed tree shape")

	// ErrCardinality indicates two merge operands declare different
	// cardinalities for the same variable ID.
	ErrCardinality = errors.New("dtree: conflicting cardinality for variable")

	// ErrIncompleteAssignment indicates a lookup assignment does not cover
	// every variable tested along the chosen path.
	ErrIncompleteAssignment = errors.New("dtree: assignment does not cover tree scope")

	// ErrStateRange indicates an assignment maps a variable to a state index
	// outside [0, Card).
	ErrStateRange = errors.New("dtree: state index out of range")

	// ErrNilTree indicates a nil *Tree operand was passed to an algebra
	// operation.
	ErrNilTree = errors.New("dtree: nil tree operand")
)

// Var is a discrete variable: a unique identifier plus the number of states
// it can take. States are indexed 0..Card-1.
type Var struct {
	// ID uniquely identifies the variable within one merge session.
	ID string

	// Card is the variable's cardinality; must be at least 1.
	Card int
}

// Assignment maps variable IDs to chosen state indices. An Assignment may
// cover more variables than a given tree's scope; extra entries are ignored
// by lookups.
type Assignment map[string]int

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for id, s := range a {
		out[id] = s
	}
	return out
}

// Tree is an immutable finite-domain decision tree with leaves of type V.
// The zero value is not usable; construct with Leaf or New.
type Tree[V any] struct {
	root node[V]
}

// node is either a leaf[V] or a *choice[V].
type node[V any] interface {
	dtreeNode()
}

// leaf holds a single value of the tree's leaf type.
type leaf[V any] struct {
	value V
}

// choice tests one variable and holds exactly v.Card children, one per state.
type choice[V any] struct {
	v        Var
	children []node[V]
}

func (leaf[V]) dtreeNode()    {}
func (*choice[V]) dtreeNode() {}
