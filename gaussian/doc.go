// Package gaussian provides the linear-factor primitives the hybrid
// container hands to downstream solvers: Jacobian factors over named
// continuous variables, callback-based nonlinear factors with first-order
// linearization, and ordered factor collections.
//
// The package deliberately stops at representation. It does not eliminate,
// factorize, or optimize — it holds per-variable coefficient blocks
// (gonum *mat.Dense), right-hand sides (*mat.VecDense), and knows how to
// compare them within a numeric tolerance and evaluate residuals at a point.
//
// Key components:
//
//   - Point:      an evaluation point — one vector per continuous variable.
//   - Jacobian:   a linear factor  Σₖ Aₖ xₖ = b  with one block per key.
//   - Nonlinear:  a factor defined by a residual/Jacobian callback;
//     Linearize performs the standard first-order (Taylor) expansion and
//     returns a Jacobian.
//   - FactorGraph: an ordered, append-only collection of factors; Append
//     copies the backing slice so collections can sit in shared decision
//     tree leaves without aliasing.
//
// Factors are immutable once constructed. Accessors that expose internal
// matrices return defensive copies.
package gaussian
