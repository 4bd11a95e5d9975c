package gaussian

// FactorGraph is an ordered collection of linear factors — the leaf type of
// the summed decision tree, where each leaf holds the factors applicable to
// one discrete assignment.
//
// FactorGraph has value semantics: Append copies the backing slice, so the
// same collection can sit in several tree leaves without aliasing. The nil
// FactorGraph is the valid empty collection.
type FactorGraph []Factor

// Append returns a new collection with f added at the end. The receiver is
// not modified and shares no backing storage with the result.
func (g FactorGraph) Append(f Factor) FactorGraph {
	out := make(FactorGraph, len(g), len(g)+1)
	copy(out, g)

	return append(out, f)
}

// Len returns the number of factors in the collection.
func (g FactorGraph) Len() int { return len(g) }

// Keys returns the union of all member factors' continuous keys in first
// appearance order.
func (g FactorGraph) Keys() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range g {
		for _, k := range f.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}

// Equal reports element-wise equality with other within tol, in order.
func (g FactorGraph) Equal(other FactorGraph, tol float64) bool {
	if len(g) != len(other) {
		return false
	}
	for i, f := range g {
		if !f.Equal(other[i], tol) {
			return false
		}
	}

	return true
}
