package chunking_test

import (
	"testing"

	"github.com/arjun-meyer/lal/chunking"
	"github.com/arjun-meyer/lal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenNodeTree builds the 10-vertex example from the head vector
// "2 5 2 5 0 9 9 9 10 5", converted to 0-indexed node ids with node i seated at
// position i — so the arrangement is the identity. Root is node 4.
func tenNodeTree() (*core.RootedTree, *core.LinearArrangement) {
	rt := core.NewRootedTreeAt(10, 4)
	parent := []int{1, 4, 1, 4, -1, 8, 8, 8, 9, 4}
	for child, p := range parent {
		if p >= 0 {
			rt.AddEdge(p, child)
		}
	}
	return rt, core.NewIdentityArrangement(10)
}

func TestAndersonMatchesDocumentedExample(t *testing.T) {
	rt, arr := tenNodeTree()
	seq := chunking.Anderson(rt, arr)

	require.Equal(t, 4, seq.Len())

	expectedChunkOf := []int{0, 0, 0, 1, 1, 2, 2, 2, 2, 3}
	for node, want := range expectedChunkOf {
		assert.Equal(t, want, seq.ChunkIndex(node), "node %d", node)
	}

	chunks := seq.Chunks()
	assert.ElementsMatch(t, []int{0, 1, 2}, chunks[0].NodeList())
	assert.ElementsMatch(t, []int{3, 4}, chunks[1].NodeList())
	assert.ElementsMatch(t, []int{5, 6, 7, 8}, chunks[2].NodeList())
	assert.ElementsMatch(t, []int{9}, chunks[3].NodeList())
}

func TestAndersonChunkParents(t *testing.T) {
	rt, arr := tenNodeTree()
	seq := chunking.Anderson(rt, arr)
	chunks := seq.Chunks()

	// chunk 0's head is node 1, whose tree parent is the root (node 4).
	p, has := chunks[0].ParentNode()
	require.True(t, has)
	assert.Equal(t, 4, p)

	// chunk 1 contains the root itself (node 4): no parent.
	_, has = chunks[1].ParentNode()
	assert.False(t, has)

	// chunk 2's head is node 8, parent node 9.
	p, has = chunks[2].ParentNode()
	require.True(t, has)
	assert.Equal(t, 9, p)

	// chunk 3 is the singleton leftover child node 9, parent node 4.
	p, has = chunks[3].ParentNode()
	require.True(t, has)
	assert.Equal(t, 4, p)
}

func TestAndersonSingleVertex(t *testing.T) {
	rt := core.NewRootedTreeAt(1, 0)
	arr := core.NewIdentityArrangement(1)
	seq := chunking.Anderson(rt, arr)
	require.Equal(t, 1, seq.Len())
	assert.Equal(t, []int{0}, seq.Chunks()[0].NodeList())
}

// A star rooted at its center: every leaf is a direct child seated
// adjacent to the center, so Anderson's march absorbs all of them into one
// chunk regardless of arrangement order.
func TestAndersonStarIsOneChunk(t *testing.T) {
	rt := core.NewRootedTreeAt(5, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(0, 2)
	rt.AddEdge(0, 3)
	rt.AddEdge(0, 4)
	arr := core.NewIdentityArrangement(5)

	seq := chunking.Anderson(rt, arr)
	assert.Equal(t, 1, seq.Len())
	_, has := seq.Chunks()[0].ParentNode()
	assert.False(t, has)
}

func path5Free() *core.FreeTree {
	t := core.NewFreeTree(5)
	t.AddEdge(0, 1)
	t.AddEdge(1, 2)
	t.AddEdge(2, 3)
	t.AddEdge(3, 4)
	return t
}

// On a path laid out in its natural order, every cut position straddles
// exactly the one edge connecting the two halves, so every flux has
// exactly one dependency, span 1 on each side, and weight 1.
func TestDependencyFluxPathIdentityArrangement(t *testing.T) {
	tr := path5Free()
	arr := core.NewIdentityArrangement(5)
	flux := chunking.DependencyFlux(tr, arr)

	require.Len(t, flux, 4)
	for i, f := range flux {
		require.Len(t, f.Dependencies, 1, "position %d", i)
		assert.Equal(t, 1, f.LeftSpan, "position %d", i)
		assert.Equal(t, 1, f.RightSpan, "position %d", i)
		assert.Equal(t, 1, f.Weight, "position %d", i)
	}
}

// Seat the star's center last: every cut position before the center has
// all four leaf-to-center edges straddling it (the center sits to the
// right of every leaf), so the dependency count grows as the cut sweeps
// past each leaf, and the leaf-removal weight is always 1 since every
// dependency shares the center vertex (a star has no two disjoint edges).
func TestDependencyFluxStarCenterLast(t *testing.T) {
	tr := core.NewFreeTree(5)
	tr.AddEdge(4, 0)
	tr.AddEdge(4, 1)
	tr.AddEdge(4, 2)
	tr.AddEdge(4, 3)
	arr := core.NewIdentityArrangement(5) // leaves at 0..3, center at 4

	flux := chunking.DependencyFlux(tr, arr)
	require.Len(t, flux, 4)
	for i, f := range flux {
		assert.Len(t, f.Dependencies, i+1, "position %d", i)
		assert.Equal(t, 1, f.Weight, "position %d", i)
		assert.Equal(t, 1, f.RightSpan, "position %d", i) // only the center lies to the right
	}
}
