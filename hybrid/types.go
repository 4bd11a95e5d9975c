// Package hybrid capability interfaces, sentinel errors, and Graph options.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with %w.
package hybrid

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/mixgraph/dtree"
	"github.com/katalvlaran/mixgraph/gaussian"
)

// Sentinel errors for hybrid-graph operations.
var (
	// ErrUnknownFactor indicates Add received a factor satisfying none of
	// the recognized capabilities. The router rejects such factors instead
	// of dropping them silently.
	ErrUnknownFactor = errors.New("hybrid: factor satisfies no known capability")

	// ErrUnsupportedFactor indicates Sum encountered a mixture entry that
	// carries no linear decision tree (for example a mixture that was never
	// linearized). The whole Sum call fails; nothing is skipped.
	ErrUnsupportedFactor = errors.New("hybrid: mixture entry has no linear decision tree")

	// ErrScopeMismatch indicates the leaves of one mixture factor do not
	// share a single continuous variable scope.
	ErrScopeMismatch = errors.New("hybrid: mixture leaves disagree on continuous scope")

	// ErrNilFactor indicates a nil factor was passed to Add.
	ErrNilFactor = errors.New("hybrid: nil factor")
)

// Factor is the minimal capability every factor carries: an identifier and
// tolerant structural equality. The router never files a factor on this
// interface alone; at least one of the specific capabilities below must be
// satisfied too.
type Factor interface {
	// Name returns the factor's identifier.
	Name() string

	// Equal reports structural equality with another factor within tol.
	// The parameter is deliberately untyped so factor families in different
	// packages can participate; implementations type-assert and return
	// false for foreign kinds.
	Equal(other any, tol float64) bool
}

// DiscreteFactor is a factor over discrete variables only.
type DiscreteFactor interface {
	Factor

	// Scope returns the discrete variables this factor references.
	Scope() []dtree.Var
}

// ContinuousFactor is a factor over continuous variables that knows its
// first-order linear form at an evaluation point. Already-linear factors
// return themselves.
type ContinuousFactor interface {
	Factor

	// Keys returns the continuous variable keys this factor references.
	Keys() []string

	// Linearize produces the factor's linear form at p.
	Linearize(p gaussian.Point) (gaussian.Factor, error)
}

// MixtureFactor is a discrete-conditioned continuous factor: one continuous
// sub-factor per joint discrete assignment.
//
// A factor may satisfy several capabilities at once; the accessor names are
// deliberately distinct per capability so that satisfying one interface is
// an explicit choice, never a structural accident.
type MixtureFactor interface {
	Factor

	// DiscreteVars returns the mixture's discrete scope.
	DiscreteVars() []dtree.Var

	// ContinuousKeys returns the continuous scope shared by all leaves.
	ContinuousKeys() []string

	// Mixture returns the decision tree of linear leaf factors, or nil when
	// the mixture is not (yet) in linear form.
	Mixture() *dtree.Tree[gaussian.Factor]

	// LinearizeLeaves returns a mixture with every leaf linearized at p.
	// The discrete scope and tree shape are preserved exactly; only leaf
	// content changes. Already-linear mixtures return themselves.
	LinearizeLeaves(p gaussian.Point) (MixtureFactor, error)
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithLogger injects a structured logger for Debug-level tracing of
// routing, linearization, and summation. The default is a no-op logger.
func WithLogger(log *zap.Logger) GraphOption {
	return func(g *Graph) {
		if log != nil {
			g.log = log
		}
	}
}
