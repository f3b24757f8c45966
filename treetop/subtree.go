package treetop

import "github.com/arjun-meyer/lal/core"

// SubtreeSizes computes, for every vertex, the size of the subtree
// rooted at it under t.Root(), via iterative post-order accumulation.
// The result is cached on t (RootedTree.SetSubtreeSizes) and
// also returned directly. Complexity: O(n).
func SubtreeSizes(t *core.RootedTree) []int {
	sizes := SubtreeSizesFree(t.FreeTree.Graph, t.Root(), core.InvalidVertex)
	t.SetSubtreeSizes(sizes)
	return sizes
}

// SubtreeSizesFree computes subtree sizes for a free tree oriented by
// treating root as the root and parent as its (possibly invalid) parent —
// oriented via a parent argument seeded with an invalid sentinel, usable
// directly on free trees without building
// a RootedTree wrapper.
func SubtreeSizesFree(g *core.Graph, root, parent int) []int {
	n := g.N()
	sizes := make([]int, n)
	order := make([]int, n)
	parentOf := make([]int, n)
	for i := range parentOf {
		parentOf[i] = core.InvalidVertex
	}

	// Iterative post-order: first compute a preorder with parent links,
	// then accumulate sizes from the end of that order backwards. This
	// avoids recursion depth concerns for large trees while giving the
	// same sizes a recursive post-order would.
	visited := make([]bool, n)
	idx := 0
	dfsStack := []int{root}
	parentOf[root] = parent
	visited[root] = true
	for len(dfsStack) > 0 {
		u := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]
		order[idx] = u
		idx++
		for _, v := range g.Neighbors(u) {
			if v == parent && u == root {
				continue
			}
			if !visited[v] {
				visited[v] = true
				parentOf[v] = u
				dfsStack = append(dfsStack, v)
			}
		}
	}

	for i := n - 1; i >= 0; i-- {
		u := order[i]
		sizes[u]++
		if p := parentOf[u]; p != core.InvalidVertex {
			sizes[p] += sizes[u]
		}
	}
	return sizes
}
