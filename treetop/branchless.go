package treetop

import "github.com/arjun-meyer/lal/core"

// BranchlessPath is a maximal vertex sequence u0..uk where u0 and uk
// (the "hubs") have degree != 2 and every internal vertex has degree
// exactly 2. A path is an Antenna if one hub has degree 1,
// otherwise a Bridge.
type BranchlessPath struct {
	Vertices []int
	// MinInternal is the lexicographically smallest internal vertex, or
	// core.InvalidVertex if the path has no internal vertices (a direct
	// hub-hub edge).
	MinInternal int
}

// IsAntenna reports whether the path has a degree-1 endpoint.
func (p BranchlessPath) IsAntenna(t *core.FreeTree) bool {
	return t.Degree(p.Vertices[0]) == 1 || t.Degree(p.Vertices[len(p.Vertices)-1]) == 1
}

// IsBridge reports whether neither endpoint has degree 1.
func (p BranchlessPath) IsBridge(t *core.FreeTree) bool { return !p.IsAntenna(t) }

// Hubs returns the path's two endpoints.
func (p BranchlessPath) Hubs() (int, int) { return p.Vertices[0], p.Vertices[len(p.Vertices)-1] }

// Internal returns the path's internal (degree-2) vertices, if any.
func (p BranchlessPath) Internal() []int {
	if len(p.Vertices) <= 2 {
		return nil
	}
	return p.Vertices[1 : len(p.Vertices)-1]
}

// DecomposeBranchlessPaths enumerates every maximal branchless path of t.
// Each undirected edge between two "hub" vertices (degree != 2) not
// already covered by a longer path becomes its own one-edge path.
// Complexity: O(n).
func DecomposeBranchlessPaths(t *core.FreeTree) []BranchlessPath {
	n := t.N()
	if n <= 2 {
		// A single edge, a single vertex, or the empty tree: trivially
		// one path (or none).
		if n == 2 {
			return []BranchlessPath{{Vertices: []int{0, 1}, MinInternal: core.InvalidVertex}}
		}
		return nil
	}

	isHub := make([]bool, n)
	for u := 0; u < n; u++ {
		isHub[u] = t.Degree(u) != 2
	}

	usedDir := make(map[[2]int]bool) // (from,to) edge-traversal already consumed
	var paths []BranchlessPath

	walk := func(start, first int) BranchlessPath {
		seq := []int{start, first}
		prev, cur := start, first
		minInternal := core.InvalidVertex
		for !isHub[cur] {
			// cur has degree 2; advance to the neighbor that is not prev.
			nbrs := t.Neighbors(cur)
			var next int
			if nbrs[0] == prev {
				next = nbrs[1]
			} else {
				next = nbrs[0]
			}
			if minInternal == core.InvalidVertex || cur < minInternal {
				minInternal = cur
			}
			seq = append(seq, next)
			prev, cur = cur, next
		}
		return BranchlessPath{Vertices: seq, MinInternal: minInternal}
	}

	for u := 0; u < n; u++ {
		if !isHub[u] {
			continue
		}
		for _, v := range t.Neighbors(u) {
			key := [2]int{u, v}
			if usedDir[key] {
				continue
			}
			p := walk(u, v)
			// Mark both directed traversals of every consecutive pair in
			// the discovered path as consumed so we do not re-walk it
			// from the other hub (or from an internal degree-2 vertex,
			// which never re-enters this outer loop anyway).
			for i := 0; i+1 < len(p.Vertices); i++ {
				a, b := p.Vertices[i], p.Vertices[i+1]
				usedDir[[2]int{a, b}] = true
				usedDir[[2]int{b, a}] = true
			}
			paths = append(paths, p)
		}
	}
	return paths
}
