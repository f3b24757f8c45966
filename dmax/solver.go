package dmax

import (
	"sort"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/registry"
)

// Solve searches for arrangements of the free tree g that maximize the
// edge length sum D among arrangements with firstNode at position 0,
// returning a registry of representatives deduplicated by level
// isomorphism. Fixing firstNode breaks the mirror symmetry but, by
// itself, only searches arrangements with that specific vertex at
// position 0 — callers that want the true unconstrained maximum should
// use MaxD, which tries every vertex in this role and merges the
// results.
func Solve(g *core.Graph, firstNode int) *registry.Registry {
	e := newEngine(g, firstNode)
	if e.n == 0 {
		return e.reg
	}
	if e.n == 1 {
		e.reg.Add(0, core.NewIdentityArrangement(1))
		return e.reg
	}

	e.placeVertex(firstNode, 0)
	e.search(1)
	return e.reg
}

// MaxD computes the unconstrained maximum edge length sum over every
// linear arrangement of the free tree g: every vertex is tried in turn
// as the fixed first vertex and the resulting registries are merged,
// since no single fixed vertex is guaranteed to participate in a
// globally optimal arrangement.
func MaxD(g *core.Graph) *registry.Registry {
	n := g.N()
	if n == 0 {
		return registry.New(g)
	}

	best := Solve(g, 0)
	for v := 1; v < n; v++ {
		best.Merge(Solve(g, v))
	}
	return best
}

// search is the per-node dispatcher of the branch-and-bound: record a
// completed arrangement, or consult whatToDoNext to either prune by
// upper bound, take an independent-set completion shortcut, or branch
// over every unassigned vertex that discardVertex and propagateConstraints
// do not reject.
func (e *engine) search(pos int) {
	e.nodesVisited++

	if pos == e.n {
		e.reg.Add(e.dp, e.currentArrangement())
		return
	}

	// Strict "<" inside whatToDoNext: a branch whose bound only ties the
	// current best may still hold a non-isomorphic representative of the
	// same value, so it is explored rather than pruned.
	switch action, _ := e.whatToDoNext(pos); action {
	case Bound:
		return
	case ContinueIndependentSet, ContinueIndependentSetLeaves:
		e.applyIndependentSetShortcut()
		return
	}

	for u := 0; u < e.n; u++ {
		if e.assigned[u] {
			continue
		}
		if reason := e.discardVertex(u, pos); reason != ReasonNone {
			continue
		}

		wasBorder := e.placeVertex(u, pos)
		reason, prop := e.propagateConstraints(u, pos)
		if reason == ReasonNone {
			e.search(pos + 1)
		}
		e.rollBackConstraints(prop)
		e.unplaceVertex(u, pos, wasBorder)
	}
}

// epsEdgeCount returns the number of edges with exactly one endpoint
// assigned: the sum, over border vertices, of their assigned-neighbor
// count (every such edge has its unassigned endpoint counted exactly
// once, in that vertex's border entry).
func (e *engine) epsEdgeCount() int64 {
	var total int64
	for _, v := range e.border.Values() {
		total += int64(e.assignedNeighCount[v])
	}
	return total
}

// applyIndependentSetShortcut completes the arrangement in one step when
// no edges remain among unassigned vertices: every remaining vertex's
// contribution is degree(v) * position(v) plus a constant (the sum of
// its assigned neighbors' positions), so the total is maximized by
// assigning the largest remaining positions to the highest-degree
// remaining vertices (rearrangement inequality). This subsumes the
// simpler all-remaining-vertices-are-leaves case: with every remaining
// degree equal to 1, the greedy assignment's total no longer depends on
// the pairing at all.
//
// Because every remaining vertex's entire neighborhood is already
// assigned (no edges remain among unassigned vertices), its level value
// comes out to exactly -assignedNeighCount[v] no matter which of the
// remaining positions it lands on: the per-position level signature the
// registry dedups by is therefore identical across every permutation
// that keeps each equal-assignedNeighCount group together, the only
// detail the rearrangement-inequality argument leaves free. Rather than
// re-exploring every such permutation (factorial in the size of the
// largest tied group, for the same single registry entry each time), one
// representative is built and folded in with its exact multiplicity.
func (e *engine) applyIndependentSetShortcut() {
	order := append([]int(nil), e.border.Values()...)
	sort.Slice(order, func(i, j int) bool {
		return e.assignedNeighCount[order[i]] > e.assignedNeighCount[order[j]]
	})

	type placement struct {
		v, pos    int
		wasBorder bool
	}
	placed := make([]placement, 0, len(order))

	nextPos := e.n - 1
	for _, v := range order {
		wasBorder := e.placeVertex(v, nextPos)
		placed = append(placed, placement{v: v, pos: nextPos, wasBorder: wasBorder})
		nextPos--
	}

	e.reg.AddMultiplicity(e.dp, e.currentArrangement(), tiedGroupPermutations(order, e.assignedNeighCount))

	for i := len(placed) - 1; i >= 0; i-- {
		p := placed[i]
		e.unplaceVertex(p.v, p.pos, p.wasBorder)
	}
}

// tiedGroupPermutations returns the product, over every maximal run of
// equal assignedNeighCount values in order (already sorted descending by
// that count), of that run's length factorial: the number of distinct
// raw arrangements that collapse to the same representative built by
// applyIndependentSetShortcut.
func tiedGroupPermutations(order []int, assignedNeighCount []int) int64 {
	var total int64 = 1
	i := 0
	for i < len(order) {
		j := i + 1
		for j < len(order) && assignedNeighCount[order[j]] == assignedNeighCount[order[i]] {
			j++
		}
		total *= factorial(int64(j - i))
		i = j
	}
	return total
}

func factorial(k int64) int64 {
	var f int64 = 1
	for i := int64(2); i <= k; i++ {
		f *= i
	}
	return f
}
