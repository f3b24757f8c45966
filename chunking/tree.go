package chunking

import "github.com/arjun-meyer/lal/core"

// directedTree is the root-relative view of a core.RootedTree that the
// chunking algorithms need: each vertex's tree parent (core.InvalidVertex
// for the root) and its tree children, derived once by a single iterative
// traversal rather than re-walked per query.
//
// Grounded on treetop's SubtreeSizesFree, the pack's own
// iterative-DFS-with-parent-array idiom for turning an undirected tree plus
// a root into directed parent/child data.
type directedTree struct {
	parent   []int
	children [][]int
}

func buildDirectedTree(rt *core.RootedTree) *directedTree {
	n := rt.N()
	dt := &directedTree{
		parent:   make([]int, n),
		children: make([][]int, n),
	}
	for i := range dt.parent {
		dt.parent[i] = core.InvalidVertex
	}
	if n == 0 {
		return dt
	}

	visited := make([]bool, n)
	root := rt.Root()
	visited[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range rt.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			dt.parent[v] = u
			dt.children[u] = append(dt.children[u], v)
			stack = append(stack, v)
		}
	}
	return dt
}

// outDegree is the number of tree children of u (its out-degree in the
// root-directed sense Anderson's algorithm needs: a leaf is out-degree 0).
func (dt *directedTree) outDegree(u int) int { return len(dt.children[u]) }

// isChildOf reports whether u is a tree child of r.
func (dt *directedTree) isChildOf(r, u int) bool { return dt.parent[u] == r }
