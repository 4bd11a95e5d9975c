// Package mixgraph is an in-memory toolkit for hybrid discrete/continuous
// inference problems — factor graphs where real-valued unknowns (poses,
// landmarks, biases) coexist with finite-domain hypotheses (data association,
// mode switches, loop-closure choices).
//
// 🚀 What is mixgraph?
//
//	A small, focused library that brings together:
//		• Decision trees: generic finite-domain trees with cross-scope merging
//		• Linear factors: Gaussian (Jacobian) factors on gonum matrices
//		• Mixture factors: one linear factor per discrete hypothesis
//		• Hybrid container: typed routing of heterogeneous factors
//		• Linearization: pointwise first-order expansion, shape-preserving
//		• Summation: fold all mixtures into one tree of factor collections
//
// ✨ Why choose mixgraph?
//
//   - Minimal API, clear and intuitive naming
//   - Immutable trees – merges share subtrees, passes never mutate inputs
//   - Explicit errors – sentinel values, branch with errors.Is
//   - Extensible – capabilities are plain interfaces, bring your own factors
//
// Under the hood, everything is organized under three subpackages:
//
//	dtree/    — finite-domain decision tree Tree[V], Combine & Apply algebra
//	gaussian/ — Jacobian factors, callback nonlinear factors, factor collections
//	hybrid/   — capability routing, the hybrid Graph, Linearize and Sum
//
// Quick ASCII example:
//
//	    x0 ──[odometry]── x1
//	            │
//	        (mode m ∈ {0,1})
//	      m=0: tight Gaussian
//	      m=1: loose Gaussian
//
//	a robot step whose noise model depends on a binary mode variable.
//
// Downstream elimination, Bayes-tree construction and sparse factorization
// are deliberately out of scope: mixgraph organizes and pre-combines factors,
// then hands one decision tree of linear sub-problems to whatever solver
// you already have.
//
//	go get github.com/katalvlaran/mixgraph
package mixgraph
