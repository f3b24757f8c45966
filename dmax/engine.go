package dmax

import (
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/isomorphism"
	"github.com/arjun-meyer/lal/linearset"
	"github.com/arjun-meyer/lal/registry"
	"github.com/arjun-meyer/lal/traverse"
	"github.com/arjun-meyer/lal/treetop"
)

// engine holds all search data for one solve. A dedicated struct (rather
// than closures over local variables) keeps the hot recursive path's
// state explicit and makes every mutation it performs symmetric with its
// own rollback.
type engine struct {
	n int
	g *core.Graph
	m int64 // total edge count

	assigned            []bool
	posOf               []int // vertex -> position, valid only while assigned
	nodeAt              []int // position -> vertex, valid only while filled
	assignedNeighCount  []int // per vertex: count of currently-assigned neighbors
	assignedNeighPosSum []int // per vertex: sum of positions of currently-assigned neighbors
	border              *linearset.Set

	dp         int64 // exact cost of edges with both endpoints assigned
	fixedEdges int64 // count of such edges

	reg *registry.Registry

	nodesVisited int64 // search-tree size, exposed for diagnostics/tests

	// Bookkeeping for the discard_vertex filter family (see filters.go).
	// All of it is structural (computed once from g and firstNode) except
	// decided/level/decidedOrder, which evolve with the search and are
	// rolled back exactly by rollBackConstraints.

	bipartiteColor []int // 2-coloring of g from a BFS seeded at firstNode

	parent   []int   // tree parent of each vertex under firstNode, or core.InvalidVertex
	children [][]int // children of each vertex under firstNode

	leafGroups  [][]int // groups of >=2 leaf children sharing a parent
	leafGroupOf []int   // vertex -> index into leafGroups, or -1

	isoGroups  [][]int // groups of >=2 non-leaf children sharing a parent whose subtrees are pairwise isomorphic
	isoGroupOf []int   // vertex -> index into isoGroups, or -1

	branchlessPaths  []treetop.BranchlessPath
	internalPathOf   []int // vertex -> index into branchlessPaths if it is an internal (degree-2) path vertex, else -1
	pathIsAntenna    []bool
	pathThistleCount []int // live count of internal thistles found so far on each path

	decided      []bool // whether each vertex's level value is fully determined
	level        []int  // valid only where decided[v]
	decidedOrder []int  // vertices in the order they became decided, for the equal-level lexicographic filter
}

func newEngine(g *core.Graph, firstNode int) *engine {
	n := g.N()
	posOf := make([]int, n)
	nodeAt := make([]int, n)
	for i := 0; i < n; i++ {
		posOf[i] = -1
		nodeAt[i] = -1
	}
	e := &engine{
		n:                   n,
		g:                   g,
		m:                   int64(g.M()),
		assigned:            make([]bool, n),
		posOf:               posOf,
		nodeAt:              nodeAt,
		assignedNeighCount:  make([]int, n),
		assignedNeighPosSum: make([]int, n),
		border:              linearset.New(n),
		reg:                 registry.New(g),
		decided:             make([]bool, n),
		level:               make([]int, n),
	}
	if n > 0 {
		e.initBipartiteColoring(firstNode)
		e.initParentChildren(firstNode)
		e.initSymmetryGroups()
		e.initBranchlessPaths()
	}
	return e
}

// initBipartiteColoring 2-colors g by BFS parity from root (every tree is
// bipartite). The search prunes nothing on this coloring: bipartite and
// non-bipartite arrangements are both explored.
func (e *engine) initBipartiteColoring(root int) {
	e.bipartiteColor = make([]int, e.n)
	for i := range e.bipartiteColor {
		e.bipartiteColor[i] = -1
	}
	e.bipartiteColor[root] = 0
	t := traverse.NewBFS(e.g)
	t.OnProcessNeighbor(func(from, to int, isDirect bool) {
		if e.bipartiteColor[to] == -1 {
			e.bipartiteColor[to] = 1 - e.bipartiteColor[from]
		}
	})
	t.StartAt(root)
}

// initParentChildren orients g as a rooted tree at root, recording each
// vertex's parent and each vertex's children list.
func (e *engine) initParentChildren(root int) {
	e.parent = make([]int, e.n)
	for i := range e.parent {
		e.parent[i] = core.InvalidVertex
	}
	t := traverse.NewBFS(e.g)
	t.OnProcessNeighbor(func(from, to int, isDirect bool) {
		if e.parent[to] == core.InvalidVertex && to != root {
			e.parent[to] = from
		}
	})
	t.StartAt(root)

	e.children = make([][]int, e.n)
	for v := 0; v < e.n; v++ {
		if p := e.parent[v]; p != core.InvalidVertex {
			e.children[p] = append(e.children[p], v)
		}
	}
}

// initSymmetryGroups partitions, for every parent with more than one
// child, its leaf children into one lexicographic group and its non-leaf
// children into isomorphism classes (themselves lexicographic groups
// when a class has more than one member). These are the subtrees whose
// roots could be freely permuted without changing D, so only one
// lexicographic order among each group is ever explored.
func (e *engine) initSymmetryGroups() {
	e.leafGroupOf = make([]int, e.n)
	e.isoGroupOf = make([]int, e.n)
	for v := range e.leafGroupOf {
		e.leafGroupOf[v] = -1
		e.isoGroupOf[v] = -1
	}

	for p := 0; p < e.n; p++ {
		kids := e.children[p]
		if len(kids) < 2 {
			continue
		}

		var leaves, inner []int
		for _, c := range kids {
			if e.g.Degree(c) == 1 {
				leaves = append(leaves, c)
			} else {
				inner = append(inner, c)
			}
		}

		if len(leaves) >= 2 {
			idx := len(e.leafGroups)
			e.leafGroups = append(e.leafGroups, leaves)
			for _, c := range leaves {
				e.leafGroupOf[c] = idx
			}
		}

		e.groupIsomorphicSubtrees(p, inner)
	}
}

// groupIsomorphicSubtrees partitions inner (the non-leaf children of p)
// by pairwise isomorphism of their subtrees (each extracted independent
// of the rest of the tree, since the children themselves are not each
// other's ancestor), registering every class with >=2 members.
func (e *engine) groupIsomorphicSubtrees(p int, inner []int) {
	assignedTo := make([]int, len(inner))
	for i := range assignedTo {
		assignedTo[i] = -1
	}
	var classes [][]int
	for i, ci := range inner {
		if assignedTo[i] != -1 {
			continue
		}
		subI := extractSubtree(e.g, ci, p)
		classIdx := len(classes)
		classes = append(classes, []int{ci})
		assignedTo[i] = classIdx
		for j := i + 1; j < len(inner); j++ {
			if assignedTo[j] != -1 {
				continue
			}
			cj := inner[j]
			subJ := extractSubtree(e.g, cj, p)
			if isomorphism.AreRootedTreesIsomorphic(subI, 0, subJ, 0, isomorphism.TupleSmall) {
				classes[classIdx] = append(classes[classIdx], cj)
				assignedTo[j] = classIdx
			}
		}
	}
	for _, class := range classes {
		if len(class) < 2 {
			continue
		}
		idx := len(e.isoGroups)
		e.isoGroups = append(e.isoGroups, class)
		for _, c := range class {
			e.isoGroupOf[c] = idx
		}
	}
}

// extractSubtree isolates the subtree of g hanging from root, away from
// avoid, as its own tree with vertices renumbered 0..k-1 (root becomes
// 0). Needed because comparing two children's subtrees for isomorphism
// by calling the whole-tree isomorphism check directly on their vertex
// ids would not exclude the rest of the tree beyond avoid.
func extractSubtree(g *core.Graph, root, avoid int) *core.FreeTree {
	n := g.N()
	visited := make([]bool, n)
	members := make([]int, 0, n)
	stack := []int{root}
	visited[root] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, u)
		for _, v := range g.Neighbors(u) {
			if v == avoid || visited[v] {
				continue
			}
			visited[v] = true
			stack = append(stack, v)
		}
	}

	localID := make(map[int]int, len(members))
	for i, u := range members {
		localID[u] = i
	}

	sub := core.NewFreeTree(len(members))
	for _, u := range members {
		for _, v := range g.Neighbors(u) {
			lv, ok := localID[v]
			if !ok || lv <= localID[u] {
				continue
			}
			sub.AddEdge(localID[u], lv)
		}
	}
	return sub
}

// initBranchlessPaths decomposes g into its maximal branchless paths and
// records, for every internal (degree-2) vertex, which path it belongs
// to and whether that path is an antenna or a bridge.
func (e *engine) initBranchlessPaths() {
	tree := &core.FreeTree{Graph: e.g}
	e.branchlessPaths = treetop.DecomposeBranchlessPaths(tree)
	e.internalPathOf = make([]int, e.n)
	for v := range e.internalPathOf {
		e.internalPathOf[v] = -1
	}
	e.pathIsAntenna = make([]bool, len(e.branchlessPaths))
	e.pathThistleCount = make([]int, len(e.branchlessPaths))
	for i, p := range e.branchlessPaths {
		e.pathIsAntenna[i] = p.IsAntenna(tree)
		for _, v := range p.Internal() {
			e.internalPathOf[v] = i
		}
	}
}

// placeVertex assigns v to pos, updating dp with the now-exact length of
// every edge from v to an already-assigned neighbor, and maintaining the
// border set. wasBorder reports whether v itself had to be removed from
// the border (false if v was never a border member, e.g. the very first
// vertex placed).
func (e *engine) placeVertex(v, pos int) (wasBorder bool) {
	e.assigned[v] = true
	e.posOf[v] = pos
	e.nodeAt[pos] = v

	wasBorder = e.border.Contains(v)
	if wasBorder {
		e.border.Remove(v)
	}

	for _, w := range e.g.Neighbors(v) {
		if e.assigned[w] {
			length := pos - e.posOf[w]
			if length < 0 {
				length = -length
			}
			e.dp += int64(length)
			e.fixedEdges++
		} else {
			e.assignedNeighCount[w]++
			e.assignedNeighPosSum[w] += pos
			if !e.border.Contains(w) {
				e.border.Insert(w)
			}
		}
	}
	return wasBorder
}

// unplaceVertex reverses placeVertex exactly. wasBorder must be the value
// placeVertex returned for this same placement.
func (e *engine) unplaceVertex(v, pos int, wasBorder bool) {
	for _, w := range e.g.Neighbors(v) {
		if e.assigned[w] {
			length := pos - e.posOf[w]
			if length < 0 {
				length = -length
			}
			e.dp -= int64(length)
			e.fixedEdges--
		} else {
			e.assignedNeighCount[w]--
			e.assignedNeighPosSum[w] -= pos
			if e.assignedNeighCount[w] == 0 {
				e.border.Remove(w)
			}
		}
	}

	e.assigned[v] = false
	e.posOf[v] = -1
	e.nodeAt[pos] = -1

	if wasBorder {
		e.border.Insert(v)
	}
}

// currentArrangement snapshots the (fully assigned) position table.
func (e *engine) currentArrangement() *core.LinearArrangement {
	return core.NewArrangement(append([]int(nil), e.posOf...))
}
