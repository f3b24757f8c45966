package dmax

// NextAction enumerates the four things the dispatcher can do with a
// search-tree node once its upper bound has been checked: give up on it,
// branch over every unassigned vertex, or take one of the two
// independent-set completion shortcuts.
type NextAction int

const (
	// Bound means the node's upper bound cannot beat the best value
	// found so far; the node is pruned without further work.
	Bound NextAction = iota
	// ContinueNormally means at least one edge still connects two
	// unassigned vertices, so the search must branch vertex by vertex.
	ContinueNormally
	// ContinueIndependentSet means every remaining edge already has its
	// assigned endpoint decided (no edges among unassigned vertices),
	// but some unassigned vertex has degree > 1.
	ContinueIndependentSet
	// ContinueIndependentSetLeaves is ContinueIndependentSet specialized
	// to the case where every remaining vertex is a tree leaf.
	ContinueIndependentSetLeaves
)

func (a NextAction) String() string {
	switch a {
	case Bound:
		return "bound"
	case ContinueNormally:
		return "continue_normally"
	case ContinueIndependentSet:
		return "continue_independent_set"
	case ContinueIndependentSetLeaves:
		return "continue_independent_set_leaves"
	default:
		return "next_action(unknown)"
	}
}

// whatToDoNext computes the generic upper bound for the node at pos and
// decides what the dispatcher should do: bound if the node cannot beat
// the registry's current best, otherwise branch normally unless every
// remaining edge is already decided, in which case the independent-set
// shortcut applies (further specialized to the all-leaves case).
func (e *engine) whatToDoNext(pos int) (NextAction, int64) {
	epsCount := e.epsEdgeCount()
	esCount := e.m - e.fixedEdges - epsCount
	ub := e.dp + e.guaranteedEpsLength(pos) + e.upperBoundEps(pos) + upperBoundEs(int64(e.n-pos), esCount)

	if best, has := e.reg.Best(); has && ub < best {
		return Bound, ub
	}
	if esCount != 0 {
		return ContinueNormally, ub
	}
	if e.remainingAreAllLeaves() {
		return ContinueIndependentSetLeaves, ub
	}
	return ContinueIndependentSet, ub
}

// remainingAreAllLeaves reports whether every unassigned vertex has
// degree 1. Only meaningful once the caller has established that no
// edges remain among unassigned vertices.
func (e *engine) remainingAreAllLeaves() bool {
	for v := 0; v < e.n; v++ {
		if !e.assigned[v] && e.g.Degree(v) != 1 {
			return false
		}
	}
	return true
}
