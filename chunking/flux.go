package chunking

import "github.com/arjun-meyer/lal/core"

// Dependency is an edge straddling a cut position of an arrangement: one
// endpoint lies at or before the cut, the other strictly after it.
type Dependency struct {
	U, V int
}

// Flux describes, for one cut position between two consecutive positions,
// the set of tree edges straddling it and two summaries of that set:
// LeftSpan/RightSpan count the distinct vertices on either side of the cut
// that participate in at least one straddling edge, and Weight is the size
// of the largest "independent" sub-collection of dependencies found by the
// greedy leaf-removal approximation below.
type Flux struct {
	Dependencies []Dependency
	LeftSpan     int
	RightSpan    int
	Weight       int
}

// DependencyFlux computes the sequence of n-1 fluxes of t laid out by arr,
// one per cut position 0..n-2 between consecutive arrangement slots.
// The dependency set is maintained incrementally as the cut sweeps left
// to right — at cut
// position p, edges whose far endpoint sits exactly at p leave the set
// (both endpoints now lie at or before the cut) and edges from the vertex
// newly crossed to any neighbor still to its right enter it.
func DependencyFlux(t *core.FreeTree, arr *core.LinearArrangement) []Flux {
	n := t.N()
	if n <= 1 {
		return nil
	}

	endingAt := make([][]Dependency, n)
	for u := 0; u < n; u++ {
		for _, v := range t.Neighbors(u) {
			if v <= u {
				continue // each undirected edge visited once, from its lower-id endpoint
			}
			mp := arr.Position(u)
			if arr.Position(v) > mp {
				mp = arr.Position(v)
			}
			endingAt[mp] = append(endingAt[mp], Dependency{u, v})
		}
	}

	flux := make([]Flux, n-1)
	var cur []Dependency

	for pos := 0; pos < n-1; pos++ {
		u := arr.NodeAt(pos)

		if len(endingAt[pos]) > 0 {
			cur = removeDependencies(cur, endingAt[pos])
		}
		for _, w := range t.Neighbors(u) {
			if arr.Position(w) > pos {
				cur = append(cur, Dependency{u, w})
			}
		}

		seen := make(map[int]bool, 2*len(cur))
		var left, right int
		for _, d := range cur {
			for _, v := range [2]int{d.U, d.V} {
				if seen[v] {
					continue
				}
				seen[v] = true
				if arr.Position(v) <= pos {
					left++
				} else {
					right++
				}
			}
		}

		flux[pos] = Flux{
			Dependencies: append([]Dependency(nil), cur...),
			LeftSpan:     left,
			RightSpan:    right,
			Weight:       dependencyWeight(cur, n),
		}
	}

	return flux
}

func removeDependencies(cur []Dependency, toRemove []Dependency) []Dependency {
	out := cur[:0:0]
	for _, d := range cur {
		drop := false
		for _, r := range toRemove {
			if d == r {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, d)
		}
	}
	return out
}

// dependencyWeight approximates the maximum matching among deps by
// repeatedly picking a degree-1 vertex (a leaf of the induced subgraph),
// counting its incident edge, and discarding every edge touching its one
// neighbor — a greedy leaf-removal heuristic.
func dependencyWeight(deps []Dependency, n int) int {
	if len(deps) <= 1 {
		return len(deps)
	}

	adj := make([][]int, n)
	touched := make([]bool, n)
	var touchedList []int
	for _, d := range deps {
		adj[d.U] = append(adj[d.U], d.V)
		adj[d.V] = append(adj[d.V], d.U)
		for _, v := range [2]int{d.U, d.V} {
			if !touched[v] {
				touched[v] = true
				touchedList = append(touchedList, v)
			}
		}
	}
	removed := make([]bool, n)
	degree := make([]int, n)
	for _, v := range touchedList {
		degree[v] = len(adj[v])
	}

	weight := 0
	for {
		leaf := -1
		for _, v := range touchedList {
			if !removed[v] && degree[v] == 1 {
				leaf = v
				break
			}
		}
		if leaf == -1 {
			break
		}
		weight++

		var neigh int
		for _, w := range adj[leaf] {
			if !removed[w] && degree[w] > 0 {
				neigh = w
				break
			}
		}
		removed[neigh] = true
		for _, w := range adj[neigh] {
			if !removed[w] {
				degree[w]--
			}
		}
		degree[neigh] = 0
		degree[leaf] = 0
	}

	return weight
}
