package dminlayout

import "github.com/arjun-meyer/lal/core"

// centroid finds a centroid of the free tree g: a vertex whose removal
// leaves no component with more than n/2 vertices. Algorithm: compute
// subtree sizes with respect to an arbitrary root (vertex 0), then
// repeatedly descend into whichever child's subtree holds a strict
// majority of the vertices, until none does. Runs in O(n).
func centroid(g *core.Graph) int {
	n := g.N()
	if n <= 1 {
		return 0
	}

	size := make([]int, n)
	parent := make([]int, n)
	order := make([]int, 0, n)
	visited := make([]bool, n)

	stack := []int{0}
	visited[0] = true
	parent[0] = -1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			stack = append(stack, v)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		size[u]++
		if parent[u] >= 0 {
			size[parent[u]] += size[u]
		}
	}

	u := 0
	for {
		moved := false
		for _, v := range g.Neighbors(u) {
			if v == parent[u] {
				continue
			}
			if size[v] > n/2 {
				parent[v] = u
				u = v
				moved = true
				break
			}
		}
		if !moved {
			return u
		}
	}
}
