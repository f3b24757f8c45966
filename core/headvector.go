package core

// HeadVector is a length-n, 1-indexed parent encoding: entry i
// holds the parent of vertex i, or 0 meaning "this is the root". It is
// consumed only by the constructors below and by the treebank package;
// core algorithms operate on FreeTree/RootedTree, never on HeadVector
// directly.
type HeadVector []int

// FromHeadVector builds a RootedTree from hv. hv must contain exactly one
// 0 entry (the root); every other entry must be a 1-indexed vertex id in
// [1,n]. Returns ErrBadHeadVector on any violation, including a hv that
// does not encode a connected acyclic graph.
func FromHeadVector(hv HeadVector) (*RootedTree, error) {
	n := len(hv)
	root := -1
	edges := make([][2]int, 0, n-1)
	for i, p := range hv {
		switch {
		case p == 0:
			if root != -1 {
				return nil, ErrBadHeadVector
			}
			root = i
		case p < 1 || p > n:
			return nil, ErrBadHeadVector
		default:
			edges = append(edges, [2]int{p - 1, i})
		}
	}
	if root == -1 {
		return nil, ErrBadHeadVector
	}

	t := NewRootedTreeAt(n, root)
	if err := addTreeEdges(t.FreeTree, edges); err != nil {
		return nil, err
	}
	return t, nil
}

// FromHeadVectorFreeTree builds a FreeTree from hv and an externally
// supplied root, for encodings where every entry is a real
// 1-indexed parent and the root is designated out of band).
func FromHeadVectorFreeTree(hv HeadVector, root int) (*FreeTree, error) {
	n := len(hv)
	if root < 0 || root >= n {
		return nil, ErrBadHeadVector
	}
	edges := make([][2]int, 0, n-1)
	for i, p := range hv {
		if i == root {
			continue
		}
		if p < 1 || p > n {
			return nil, ErrBadHeadVector
		}
		edges = append(edges, [2]int{p - 1, i})
	}

	t := NewFreeTree(n)
	if err := addTreeEdges(t, edges); err != nil {
		return nil, err
	}
	return t, nil
}

// addTreeEdges inserts edges into t, rejecting anything that would make
// it not a simple tree (wrong edge count, duplicate/self edge caught by
// Graph's own contract checks, or — detected post hoc — a disconnected /
// cyclic result).
func addTreeEdges(t *FreeTree, edges [][2]int) error {
	n := t.N()
	if len(edges) != n-1 && n > 0 {
		return ErrBadHeadVector
	}
	for _, e := range edges {
		if e[0] == e[1] || e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n || t.HasEdge(e[0], e[1]) {
			return ErrBadHeadVector
		}
		t.AddEdge(e[0], e[1])
	}
	if n > 0 && !isConnectedAcyclic(t.Graph) {
		return ErrBadHeadVector
	}
	return nil
}

// isConnectedAcyclic reports whether g (already known to have n-1 edges)
// is connected, which for an n-1-edge simple graph is equivalent to being
// a tree.
func isConnectedAcyclic(g *Graph) bool {
	n := g.N()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range g.Neighbors(u) {
			if !visited[v] {
				visited[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == n
}

// FromEdgeList builds a FreeTree from n vertices and n-1 edges. Returns
// ErrBadEdgeList if the edges do not form a tree.
func FromEdgeList(n int, edges [][2]int) (*FreeTree, error) {
	t := NewFreeTree(n)
	if len(edges) != n-1 && n > 0 {
		return nil, ErrBadEdgeList
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || u >= n || v < 0 || v >= n || t.HasEdge(u, v) {
			return nil, ErrBadEdgeList
		}
		t.AddEdge(u, v)
	}
	if n > 0 && !isConnectedAcyclic(t.Graph) {
		return nil, ErrBadEdgeList
	}
	return t, nil
}

// FromEdgeListGraph builds a general Graph (not necessarily a tree) from
// an edge list, for callers that only need graph-level algorithms
// (isomorphism sieve, traverse) rather than tree-specific ones.
func FromEdgeListGraph(n int, edges [][2]int, directed bool) (*Graph, error) {
	g := newGraph(n, directed)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || u >= n || v < 0 || v >= n || g.HasEdge(u, v) {
			return nil, ErrBadEdgeList
		}
		g.AddEdge(u, v)
	}
	return g, nil
}
