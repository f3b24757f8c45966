package traverse

import "github.com/arjun-meyer/lal/core"

// Mode selects breadth-first or depth-first order.
type Mode int

const (
	BFS Mode = iota
	DFS
)

// Traversal carries the graph under traversal plus every pluggable hook.
// Absent hooks are no-ops: a run skips every hook field left nil.
type Traversal struct {
	g    *core.Graph
	mode Mode

	// useReverseEdges makes a directed graph traversal follow in-edges
	// instead of out-edges.
	useReverseEdges bool
	// processVisited makes processNeighbor fire even for neighbors
	// already visited in this run (useful for cycle/back-edge detection).
	processVisited bool

	processCurrent  func(node int)
	processNeighbor func(from, to int, isDirect bool)
	terminate       func(node int) bool
	addNode         func(from, to int, isDirect bool) bool

	visited []bool
	order   []int
}

// NewBFS constructs a breadth-first Traversal over g.
func NewBFS(g *core.Graph) *Traversal { return &Traversal{g: g, mode: BFS} }

// NewDFS constructs a depth-first Traversal over g.
func NewDFS(g *core.Graph) *Traversal { return &Traversal{g: g, mode: DFS} }

// UseReverseEdges makes the traversal of a directed graph follow
// in-neighbors instead of out-neighbors.
func (t *Traversal) UseReverseEdges(v bool) *Traversal { t.useReverseEdges = v; return t }

// ProcessVisitedNeighbors enables firing OnProcessNeighbor for edges
// leading to an already-visited vertex.
func (t *Traversal) ProcessVisitedNeighbors(v bool) *Traversal { t.processVisited = v; return t }

// OnProcessCurrent registers the per-node visit hook.
func (t *Traversal) OnProcessCurrent(fn func(node int)) *Traversal {
	t.processCurrent = fn
	return t
}

// OnProcessNeighbor registers the per-incident-edge hook. isDirect is
// true when the edge was traversed in its natural direction (always true
// for undirected graphs).
func (t *Traversal) OnProcessNeighbor(fn func(from, to int, isDirect bool)) *Traversal {
	t.processNeighbor = fn
	return t
}

// OnTerminate registers a predicate checked after processing each node;
// returning true stops the traversal early.
func (t *Traversal) OnTerminate(fn func(node int) bool) *Traversal {
	t.terminate = fn
	return t
}

// OnAddNode registers a predicate checked before a neighbor is enqueued;
// returning false skips adding it (and thus visiting it via this edge).
func (t *Traversal) OnAddNode(fn func(from, to int, isDirect bool) bool) *Traversal {
	t.addNode = fn
	return t
}

// Order returns the sequence of nodes processed by the most recent run.
func (t *Traversal) Order() []int { return t.order }

// Visited reports whether u was reached by the most recent run.
func (t *Traversal) Visited(u int) bool { return u >= 0 && u < len(t.visited) && t.visited[u] }

// StartAt runs the traversal seeded with a single node.
func (t *Traversal) StartAt(node int) { t.StartAtAll([]int{node}) }

// StartAtAll runs the traversal seeded with multiple nodes, in the order
// given (supports forests / disconnected graphs).
func (t *Traversal) StartAtAll(nodes []int) {
	n := t.g.N()
	t.visited = make([]bool, n)
	t.order = t.order[:0]

	isDirect := !(t.g.IsDirected() && t.useReverseEdges)
	var frontier []int
	push := func(u int) {
		t.visited[u] = true
		frontier = append(frontier, u)
	}
	for _, s := range nodes {
		if !t.visited[s] {
			push(s)
		}
	}

	for len(frontier) > 0 {
		var u int
		switch t.mode {
		case BFS:
			u, frontier = frontier[0], frontier[1:]
		default: // DFS
			u, frontier = frontier[len(frontier)-1], frontier[:len(frontier)-1]
		}

		t.order = append(t.order, u)
		if t.processCurrent != nil {
			t.processCurrent(u)
		}

		for _, v := range t.neighborsOf(u) {
			already := t.visited[v]
			if already && !t.processVisited {
				continue
			}
			if t.processNeighbor != nil {
				t.processNeighbor(u, v, isDirect)
			}
			if already {
				continue
			}
			if t.addNode != nil && !t.addNode(u, v, isDirect) {
				continue
			}
			push(v)
		}

		if t.terminate != nil && t.terminate(u) {
			return
		}
	}
}

func (t *Traversal) neighborsOf(u int) []int {
	if !t.g.IsDirected() {
		return t.g.Neighbors(u)
	}
	if t.useReverseEdges {
		return t.g.InNeighbors(u)
	}
	return t.g.OutNeighbors(u)
}
