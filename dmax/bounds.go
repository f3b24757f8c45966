package dmax

// guaranteedEpsLength returns the minimum length every prefix-to-suffix
// edge is already guaranteed to contribute, even before its unassigned
// endpoint is placed: that endpoint's final position can be no smaller
// than pos (every smaller position is already filled), so an edge whose
// assigned endpoint sits at q contributes at least pos-q. Summed over
// every (border vertex, assigned-neighbor) pair this is an exact lower
// bound, not itself an estimate, and must be added on top of
// upperBoundEps's bound on the additional stretch beyond it.
func (e *engine) guaranteedEpsLength(pos int) int64 {
	var total int64
	for _, v := range e.border.Values() {
		total += int64(e.assignedNeighCount[v])*int64(pos) - int64(e.assignedNeighPosSum[v])
	}
	return total
}

// upperBoundEps bounds the additional length every prefix-to-suffix edge
// still undecided may accrue beyond its guaranteedEpsLength, via the
// rearrangement inequality: border vertices are sorted by decreasing
// assigned-neighbor count (the number of edges that will eventually
// "stretch" from that vertex), then paired against the decreasing
// sequence of maximum remaining stretch lengths n-pos-1, n-pos-2, ... —
// pairing the largest multiplicities with the largest possible lengths
// can never underestimate the true total.
func (e *engine) upperBoundEps(pos int) int64 {
	border := e.border.Values()
	keys := make([]int, len(border))
	for i, v := range border {
		keys[i] = e.assignedNeighCount[v]
	}
	sortDescByCountingSort(keys, e.n)

	var bound int64
	currentLength := int64(e.n - (pos + 1))
	for _, k := range keys {
		if currentLength < 0 {
			currentLength = 0
		}
		bound += currentLength * int64(k)
		currentLength--
	}
	return bound
}

// sortDescByCountingSort sorts keys in place, descending, in O(len+bound)
// via counting sort; every key is known to lie in [0,bound].
func sortDescByCountingSort(keys []int, bound int) {
	if len(keys) == 0 {
		return
	}
	counts := make([]int, bound+1)
	for _, k := range keys {
		counts[k]++
	}
	idx := 0
	for v := bound; v >= 0; v-- {
		for c := 0; c < counts[v]; c++ {
			keys[idx] = v
			idx++
		}
	}
}

// upperBoundEs bounds the total length contributed by edges whose both
// endpoints are still unassigned, from the closed-form expression for
// nPrime unassigned vertices and m edges among them,
//
//	floor((4*nPrime*m + (m mod 2) - m^2 - 4m) / 4).
//
// This is the maximum total edge length achievable by any arrangement of
// m edges among nPrime slots (attained by a balanced bipartite-like
// placement), so it never underestimates the true remaining contribution.
func upperBoundEs(nPrime, m int64) int64 {
	if m <= 0 {
		return 0
	}
	numerator := 4*nPrime*m + (m % 2) - m*m - 4*m
	return floorDiv(numerator, 4)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
