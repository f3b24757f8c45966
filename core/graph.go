package core

import "fmt"

// Graph is a fixed-size directed or undirected graph over vertices
// 0..n-1, stored as per-vertex neighbor slices.
//
// Undirected graphs store each edge in both endpoints' neighbor slices.
// Directed graphs keep separate out- and in-neighbor slices. A Graph
// tracks a normalized flag: when true, every neighbor slice is
// sorted ascending. Mutations preserve the flag conservatively — an
// insertion that keeps the tail sorted leaves the flag alone; anything
// else clears it. Normalize() restores the invariant unconditionally.
//
// Complexity of every method below is documented per-method; construction
// is O(n).
type Graph struct {
	n          int
	directed   bool
	numEdges   int
	normalized bool

	// out holds the full neighbor list for undirected graphs, and the
	// out-neighbor list for directed graphs.
	out [][]int
	// in holds in-neighbors; nil for undirected graphs.
	in [][]int
}

// NewUndirectedGraph constructs an empty undirected graph on n vertices.
func NewUndirectedGraph(n int) *Graph {
	return newGraph(n, false)
}

// NewDirectedGraph constructs an empty directed graph on n vertices.
func NewDirectedGraph(n int) *Graph {
	return newGraph(n, true)
}

func newGraph(n int, directed bool) *Graph {
	if n < 0 {
		contractViolation("negative vertex count")
	}
	g := &Graph{
		n:          n,
		directed:   directed,
		normalized: true, // vacuously true: every neighbor slice is empty
		out:        make([][]int, n),
	}
	if directed {
		g.in = make([][]int, n)
	}

	return g
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges (each undirected edge counts once).
func (g *Graph) M() int { return g.numEdges }

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool { return g.directed }

// Normalized reports whether every neighbor list is currently sorted
// ascending.
func (g *Graph) Normalized() bool { return g.normalized }

func (g *Graph) checkVertex(u int) {
	if u < 0 || u >= g.n {
		contractViolation(fmt.Sprintf("vertex %d out of range [0,%d)", u, g.n))
	}
}

// HasEdge reports whether u and v are adjacent (for directed graphs: an
// edge u->v exists). Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.checkVertex(u)
	g.checkVertex(v)
	for _, w := range g.out[u] {
		if w == v {
			return true
		}
	}
	return false
}

// AddEdge inserts the edge u-v (or u->v if directed). Self-loops and
// parallel edges are contract violations. When normalize is true, the
// graph is fully re-normalized after the insertion; otherwise the
// normalized flag is updated conservatively.
// Complexity: O(deg(u)) for the duplicate-edge check when normalize is
// false; with normalize true, a full Normalize is added.
func (g *Graph) AddEdge(u, v int, normalize ...bool) *Graph {
	g.checkVertex(u)
	g.checkVertex(v)
	if u == v {
		contractViolation("self-loop not allowed")
	}
	if g.HasEdge(u, v) {
		contractViolation(fmt.Sprintf("duplicate edge (%d,%d)", u, v))
	}

	g.appendOut(u, v)
	if g.directed {
		g.appendSlice(&g.in[v], u)
	} else {
		g.appendOut(v, u)
	}
	g.numEdges++

	if wantNormalize(normalize) {
		g.Normalize()
	}
	return g
}

// AddEdges inserts a batch of edges in order. Equivalent to calling
// AddEdge for each pair, with a single optional trailing normalization.
func (g *Graph) AddEdges(edges [][2]int, normalize ...bool) *Graph {
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	if wantNormalize(normalize) {
		g.Normalize()
	}
	return g
}

// RemoveEdge deletes the edge u-v if present; a no-op otherwise.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int, normalize ...bool) *Graph {
	g.checkVertex(u)
	g.checkVertex(v)
	removed := g.removeFromSlice(&g.out[u], v)
	if g.directed {
		g.removeFromSlice(&g.in[v], u)
	} else {
		g.removeFromSlice(&g.out[v], u)
	}
	if removed {
		g.numEdges--
	}
	if wantNormalize(normalize) {
		g.Normalize()
	}
	return g
}

// RemoveEdges deletes a batch of edges.
func (g *Graph) RemoveEdges(edges [][2]int, normalize ...bool) *Graph {
	for _, e := range edges {
		g.RemoveEdge(e[0], e[1])
	}
	if wantNormalize(normalize) {
		g.Normalize()
	}
	return g
}

// Clear removes every edge, leaving the vertex count unchanged.
func (g *Graph) Clear() *Graph {
	for i := range g.out {
		g.out[i] = nil
	}
	if g.directed {
		for i := range g.in {
			g.in[i] = nil
		}
	}
	g.numEdges = 0
	g.normalized = true
	return g
}

// Neighbors returns u's neighbor list: for directed graphs, its
// out-neighbors ("neighbors(u)" without a direction
// qualifier reads as out-neighbors unless the caller asks otherwise).
// The returned slice must not be mutated by the caller.
func (g *Graph) Neighbors(u int) []int {
	g.checkVertex(u)
	return g.out[u]
}

// OutNeighbors returns u's out-neighbors (equals Neighbors for undirected
// graphs).
func (g *Graph) OutNeighbors(u int) []int { return g.Neighbors(u) }

// InNeighbors returns u's in-neighbors. For undirected graphs this equals
// Neighbors(u).
func (g *Graph) InNeighbors(u int) []int {
	g.checkVertex(u)
	if !g.directed {
		return g.out[u]
	}
	return g.in[u]
}

// Degree returns the number of incident edges to u (for directed graphs,
// out-degree + in-degree).
func (g *Graph) Degree(u int) int {
	g.checkVertex(u)
	if !g.directed {
		return len(g.out[u])
	}
	return len(g.out[u]) + len(g.in[u])
}

// OutDegree returns len(OutNeighbors(u)).
func (g *Graph) OutDegree(u int) int { return len(g.OutNeighbors(u)) }

// InDegree returns len(InNeighbors(u)).
func (g *Graph) InDegree(u int) int { return len(g.InNeighbors(u)) }

// Normalize sorts every neighbor slice ascending via a counting sort over
// the known [0,n) range, and sets the normalized flag. Complexity: O(n)
// for every list of two or more entries, so O(n^2) in the worst case.
func (g *Graph) Normalize() *Graph {
	for u := 0; u < g.n; u++ {
		countingSortInPlace(g.out[u], g.n)
		if g.directed {
			countingSortInPlace(g.in[u], g.n)
		}
	}
	g.normalized = true
	return g
}

// DisjointUnion returns a new graph consisting of g and other with
// other's vertex indices shifted by g.N(). Both operands must have the
// same directedness.
func (g *Graph) DisjointUnion(other *Graph) *Graph {
	if g.directed != other.directed {
		contractViolation("disjoint union of mismatched directedness")
	}
	shift := g.n
	out := newGraph(g.n+other.n, g.directed)
	for u := 0; u < g.n; u++ {
		out.out[u] = append([]int(nil), g.out[u]...)
		if g.directed {
			out.in[u] = append([]int(nil), g.in[u]...)
		}
	}
	for u := 0; u < other.n; u++ {
		dst := make([]int, len(other.out[u]))
		for i, v := range other.out[u] {
			dst[i] = v + shift
		}
		out.out[u+shift] = dst
		if g.directed {
			dst2 := make([]int, len(other.in[u]))
			for i, v := range other.in[u] {
				dst2[i] = v + shift
			}
			out.in[u+shift] = dst2
		}
	}
	out.numEdges = g.numEdges + other.numEdges
	out.normalized = g.normalized && other.normalized
	return out
}

// appendOut appends v to u's out-neighbor list and conservatively updates
// the normalized flag: the flag survives only if the tail remains sorted.
func (g *Graph) appendOut(u, v int) {
	g.appendSlice(&g.out[u], v)
}

func (g *Graph) appendSlice(s *[]int, v int) {
	if g.normalized && len(*s) > 0 && (*s)[len(*s)-1] > v {
		g.normalized = false
	}
	*s = append(*s, v)
}

func (g *Graph) removeFromSlice(s *[]int, v int) bool {
	for i, w := range *s {
		if w == v {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

func wantNormalize(normalize []bool) bool {
	return len(normalize) > 0 && normalize[0]
}

// countingSortInPlace sorts s ascending given that every value lies in
// [0, bound); uses a 1..bound-range-aware counting sort.
func countingSortInPlace(s []int, bound int) {
	if len(s) < 2 {
		return
	}
	counts := make([]int, bound)
	for _, v := range s {
		counts[v]++
	}
	idx := 0
	for v := 0; v < bound; v++ {
		for c := 0; c < counts[v]; c++ {
			s[idx] = v
			idx++
		}
	}
}
