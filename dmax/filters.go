package dmax

import "github.com/arjun-meyer/lal/levelsig"

// discardVertex reports whether tentatively placing u at pos (before any
// state is committed) would certainly violate a condition that depends
// only on already-decided placements: the two lexicographic symmetry
// breakers. No placement is rejected for producing a bipartite (or a
// non-bipartite) arrangement; ReasonWillProduceBipartiteArrangement is
// never returned. Level-dependent conditions (thistles, the
// non-increasing signature, equal adjacent levels) are checked afterward,
// once placement makes them computable, by propagateConstraints.
func (e *engine) discardVertex(u, pos int) ReasonDiscard {
	if g := e.leafGroupOf[u]; g != -1 && !e.isLexicographicallyConsistent(e.leafGroups[g], u, pos) {
		return ReasonNodeLeavesDisobeyLexicographicOrder
	}
	if g := e.isoGroupOf[u]; g != -1 && !e.isLexicographicallyConsistent(e.isoGroups[g], u, pos) {
		return ReasonRootsOfIsomorphicSubtreesDisobeyLexicographicOrder
	}
	return ReasonNone
}

// isLexicographicallyConsistent enforces that the members of group
// (siblings known to be mutually interchangeable without affecting D)
// occupy positions in increasing order of vertex id: whichever member
// has already been placed must be consistent with u, the candidate
// member, landing at pos.
func (e *engine) isLexicographicallyConsistent(group []int, u, pos int) bool {
	for _, w := range group {
		if w == u || !e.assigned[w] {
			continue
		}
		if (w < u && e.posOf[w] > pos) || (w > u && e.posOf[w] < pos) {
			return false
		}
	}
	return true
}

// prefixColorChanges counts the 2-coloring changes within the already
// filled positions [0,pos). A completed arrangement is bipartite iff its
// total count is at most 1.
func (e *engine) prefixColorChanges(pos int) int {
	changes := 0
	for p := 1; p < pos; p++ {
		if e.bipartiteColor[e.nodeAt[p-1]] != e.bipartiteColor[e.nodeAt[p]] {
			changes++
		}
	}
	return changes
}

// decisionRecord is one vertex's contribution to a propagateConstraints
// call, carrying exactly what rollBackConstraints needs to undo it.
type decisionRecord struct {
	vertex         int
	pathIdx        int
	thistleCounted bool
	orderAppended  bool
}

type propagation struct {
	decided []decisionRecord
}

// computeLevel computes L(v) = #{neighbors to the right} -
// #{neighbors to the left} directly from engine state, the same
// definition levelsig.PerVertex uses over a finished arrangement. Valid
// only once every neighbor of v is assigned.
func (e *engine) computeLevel(v int) int {
	pv := e.posOf[v]
	level := 0
	for _, w := range e.g.Neighbors(v) {
		if e.posOf[w] > pv {
			level++
		} else {
			level--
		}
	}
	return level
}

// propagateConstraints is called immediately after u is placed at pos. It
// finds every vertex whose level just became fully determined (u itself,
// if all of u's neighbors are already assigned, and any neighbor of u
// for whom u was the last missing neighbor), computes each one's level,
// and checks the level-dependent necessary conditions on each in turn.
// The returned propagation records precisely what was mutated, so
// rollBackConstraints can undo it regardless of whether the overall
// placement is kept or discarded.
func (e *engine) propagateConstraints(u, pos int) (ReasonDiscard, propagation) {
	var prop propagation

	var candidates []int
	if e.assignedNeighCount[u] == e.g.Degree(u) {
		candidates = append(candidates, u)
	}
	for _, w := range e.g.Neighbors(u) {
		if e.assigned[w] && !e.decided[w] && e.assignedNeighCount[w] == e.g.Degree(w) {
			candidates = append(candidates, w)
		}
	}

	for _, v := range candidates {
		level := e.computeLevel(v)
		e.decided[v] = true
		e.level[v] = level

		rec := decisionRecord{vertex: v, pathIdx: e.internalPathOf[v]}
		if rec.pathIdx != -1 && levelsig.IsThistle(level, e.g.Degree(v)) {
			e.pathThistleCount[rec.pathIdx]++
			rec.thistleCounted = true
		}

		reason, appended := e.checkDecidedVertex(v)
		rec.orderAppended = appended
		prop.decided = append(prop.decided, rec)
		if reason != ReasonNone {
			return reason, prop
		}
	}
	return ReasonNone, prop
}

// checkDecidedVertex applies the level-dependent necessary conditions to
// v, whose level has just been computed: the antenna/bridge thistle
// limits, the non-increasing signature against v's already-decided
// left neighbor, no two graph-adjacent vertices sharing a level, and the
// equal-level lexicographic order among every vertex decided so far. On
// success it appends v to decidedOrder and reports appended=true, so the
// caller's rollback can pop it again.
func (e *engine) checkDecidedVertex(v int) (ReasonDiscard, bool) {
	deg := e.g.Degree(v)
	level := e.level[v]

	if pathIdx := e.internalPathOf[v]; pathIdx != -1 && levelsig.IsThistle(level, deg) {
		if e.pathIsAntenna[pathIdx] {
			return ReasonNodeOfAntennaAsThistle, false
		}
		if e.pathThistleCount[pathIdx] > 1 {
			return ReasonThistleInBridgeIsNotTheLowest, false
		}
	}

	pv := e.posOf[v]
	if pv > 0 {
		if left := e.nodeAt[pv-1]; left != -1 && e.decided[left] && e.level[left] < level {
			return ReasonLevelSignatureWillNotBeNonincreasing, false
		}
	}

	for _, w := range e.g.Neighbors(v) {
		if e.decided[w] && e.level[w] == level {
			return ReasonAdjacentVerticesWithEqualLevelValue, false
		}
	}

	for _, w := range e.decidedOrder {
		if e.level[w] != level {
			continue
		}
		if (w < v && e.posOf[w] > pv) || (w > v && e.posOf[w] < pv) {
			return ReasonNodesOfEqualLevelDisobeyLexicographicOrder, false
		}
	}

	e.decidedOrder = append(e.decidedOrder, v)
	return ReasonNone, true
}

// rollBackConstraints undoes exactly the bookkeeping propagateConstraints
// performed, in reverse order, regardless of whether the placement that
// triggered it was ultimately kept.
func (e *engine) rollBackConstraints(prop propagation) {
	for i := len(prop.decided) - 1; i >= 0; i-- {
		rec := prop.decided[i]
		if rec.orderAppended {
			e.decidedOrder = e.decidedOrder[:len(e.decidedOrder)-1]
		}
		if rec.thistleCounted {
			e.pathThistleCount[rec.pathIdx]--
		}
		e.decided[rec.vertex] = false
	}
}
