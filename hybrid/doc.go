// Package hybrid implements the container and combination algebra for
// factor graphs that mix discrete, continuous, and discrete-conditioned
// (mixture) factors.
//
// Description:
//
//	A hybrid Graph owns three typed sub-collections — discrete factors,
//	continuous factors, mixture factors — plus one unified list preserving
//	insertion order. Factors enter through Add, which inspects which
//	capabilities a factor satisfies (interface queries, not exact types)
//	and files it into every matching sub-collection. A factor satisfying
//	two capabilities is filed twice; one satisfying none is rejected with
//	ErrUnknownFactor.
//
// The two passes downstream solvers consume:
//
//   - Linearize(point) returns a NEW Graph in which every continuous factor
//     is replaced by its first-order linear form at the point and every
//     mixture factor has its leaves linearized while its discrete scope and
//     tree shape are preserved exactly. Already-linear content passes
//     through unchanged. The receiver is never mutated.
//
//   - Sum() folds all mixture factors, in insertion order, into a single
//     decision tree whose leaves are gaussian.FactorGraph collections: for
//     each joint discrete assignment, the leaf lists exactly the linear
//     factors applicable under that assignment. Operand trees may have
//     different scopes; the fold extends by cross product via
//     dtree.Combine. A mixture entry with no linear tree at call time
//     fails the whole call with ErrUnsupportedFactor — never skipped.
//
// Capabilities:
//
//	DiscreteFactor   — Scope() over discrete variables.
//	ContinuousFactor — Keys() over continuous variables, Linearize.
//	MixtureFactor    — DiscreteVars, ContinuousKeys, Mixture tree,
//	                   LinearizeLeaves.
//
// Concrete factors provided: TableFactor (discrete weight table), Mixture
// (linear leaves), NonlinearMixture (nonlinear leaves, linearizable).
// gaussian.Jacobian and gaussian.Nonlinear satisfy ContinuousFactor.
//
// Guarantees:
//
//   - Insertion order is preserved per sub-collection and in the unified
//     list; adding the same factor twice files it twice (no deduplication).
//   - Linearize and Sum are pure: they never mutate the receiver.
//   - A Graph is NOT safe for concurrent mutation. Concurrent workers may
//     prepare factors in parallel, but a single goroutine must perform the
//     Adds. Sum is an ordered fold and runs sequentially.
//
// Errors:
//   - ErrUnknownFactor     — Add received a factor with no recognized capability.
//   - ErrUnsupportedFactor — Sum met a mixture entry without a linear tree.
//   - ErrScopeMismatch     — mixture leaves disagree on continuous scope.
//   - dtree.ErrCardinality — merge operands disagree on a variable's cardinality.
package hybrid
