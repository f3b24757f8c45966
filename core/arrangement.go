package core

// InvalidVertex is the sentinel used in place of a real vertex index when
// none applies (e.g. the parent of a root). treetop.Centre does not use
// it: a single centre is reported with n+1 as its second value.
const InvalidVertex = -1

// LinearArrangement is a bidirectional mapping between the nodes of an
// n-vertex graph and positions 0..n-1. Both directions — node to
// position and position to node — are O(1).
//
// The zero value (size 0) is the sentinel "identity" arrangement, read as
// π = id_n for whatever n the caller has in mind; most algorithms build a
// concrete arrangement with NewIdentityArrangement or NewArrangement
// before using it.
type LinearArrangement struct {
	nodeToPos []int
	posToNode []int
}

// NewIdentityArrangement builds π = id_n: node i sits at position i.
func NewIdentityArrangement(n int) *LinearArrangement {
	a := &LinearArrangement{
		nodeToPos: make([]int, n),
		posToNode: make([]int, n),
	}
	for i := 0; i < n; i++ {
		a.nodeToPos[i] = i
		a.posToNode[i] = i
	}
	return a
}

// NewArrangement builds an arrangement from an explicit node->position
// table. The caller is responsible for pos being a permutation of
// [0,len(pos)); use arrangement.IsPermutation to check.
func NewArrangement(pos []int) *LinearArrangement {
	a := &LinearArrangement{
		nodeToPos: append([]int(nil), pos...),
		posToNode: make([]int, len(pos)),
	}
	for node, p := range pos {
		if p >= 0 && p < len(a.posToNode) {
			a.posToNode[p] = node
		}
	}
	return a
}

// NewEmptyArrangement returns a size-0 arrangement (the "identity"
// sentinel), distinct from NewIdentityArrangement(0) only in
// intent: callers use this to mean "not yet built".
func NewEmptyArrangement() *LinearArrangement { return &LinearArrangement{} }

// Size returns n, the number of nodes in the arrangement.
func (a *LinearArrangement) Size() int { return len(a.nodeToPos) }

// Position returns the position assigned to node.
func (a *LinearArrangement) Position(node int) int { return a.nodeToPos[node] }

// NodeAt returns the node occupying position pos.
func (a *LinearArrangement) NodeAt(pos int) int { return a.posToNode[pos] }

// Assign places node at pos, updating both directions. Complexity: O(1).
func (a *LinearArrangement) Assign(node, pos int) {
	a.nodeToPos[node] = pos
	a.posToNode[pos] = node
}

// Clone returns a deep copy.
func (a *LinearArrangement) Clone() *LinearArrangement {
	return &LinearArrangement{
		nodeToPos: append([]int(nil), a.nodeToPos...),
		posToNode: append([]int(nil), a.posToNode...),
	}
}

// Reversed returns a new arrangement with every position mirrored:
// position p becomes n-1-p.
func (a *LinearArrangement) Reversed() *LinearArrangement {
	n := a.Size()
	out := &LinearArrangement{
		nodeToPos: make([]int, n),
		posToNode: make([]int, n),
	}
	for node, p := range a.nodeToPos {
		rp := n - 1 - p
		out.nodeToPos[node] = rp
		out.posToNode[rp] = node
	}
	return out
}

// Positions returns the underlying node->position table. The caller must
// not mutate the returned slice.
func (a *LinearArrangement) Positions() []int { return a.nodeToPos }

// Nodes returns the underlying position->node table. The caller must not
// mutate the returned slice.
func (a *LinearArrangement) Nodes() []int { return a.posToNode }
