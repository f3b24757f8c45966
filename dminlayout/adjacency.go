package dminlayout

import (
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/treetop"
)

// childEntry pairs a child vertex with the size of the subtree rooted at
// it.
type childEntry struct {
	child int
	size  int
}

// sizeSortedAdjacency builds, for every vertex, the list of its children
// (relative to rt's root) ordered by decreasing subtree size.
func sizeSortedAdjacency(rt *core.RootedTree) [][]childEntry {
	n := rt.N()
	sizes := treetop.SubtreeSizes(rt)

	raw := make([][]childEntry, n)
	visited := make([]bool, n)
	stack := []int{rt.Root()}
	visited[rt.Root()] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range rt.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			raw[u] = append(raw[u], childEntry{child: v, size: sizes[v]})
			stack = append(stack, v)
		}
	}

	return sortChildrenDescending(raw, n)
}

// sortChildrenDescending orders every vertex's children by decreasing
// subtree size with one counting sort over all parent/child entries, so
// the whole table costs O(n); children of equal size keep their
// discovery order.
func sortChildrenDescending(raw [][]childEntry, n int) [][]childEntry {
	buckets := make([][][2]int, n+1) // size -> (parent, child) pairs
	for u, kids := range raw {
		for _, c := range kids {
			buckets[c.size] = append(buckets[c.size], [2]int{u, c.child})
		}
	}
	L := make([][]childEntry, n)
	for s := n; s >= 0; s-- {
		for _, pc := range buckets[s] {
			L[pc[0]] = append(L[pc[0]], childEntry{child: pc[1], size: s})
		}
	}
	return L
}
