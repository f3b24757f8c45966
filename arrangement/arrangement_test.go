package arrangement_test

import (
	"testing"

	"github.com/arjun-meyer/lal/arrangement"
	"github.com/arjun-meyer/lal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPermutation(t *testing.T) {
	assert.True(t, arrangement.IsPermutation([]int{2, 0, 1}))
	assert.False(t, arrangement.IsPermutation([]int{2, 0, 2}))
	assert.False(t, arrangement.IsPermutation([]int{0, 1, 3}))
}

func TestDIdentityPath(t *testing.T) {
	g := core.NewUndirectedGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	arr := core.NewIdentityArrangement(5)
	assert.EqualValues(t, 4, arrangement.D(g, arr))
}

func TestDMaxP5(t *testing.T) {
	g := core.NewUndirectedGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	arr := core.NewArrangement([]int{2, 0, 4, 1, 3})
	assert.EqualValues(t, 11, arrangement.D(g, arr))
}

func TestIsPlanarProjectiveLayout(t *testing.T) {
	rt := core.NewRootedTreeAt(6, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(0, 2)
	rt.AddEdge(1, 3)
	rt.AddEdge(1, 4)
	rt.AddEdge(2, 5)
	// Root at position 3, left subtree {1,3,4} contiguous at 0..2, right
	// subtree {2,5} contiguous at 4..5: a genuinely projective layout.
	arr := core.NewArrangement([]int{3, 0, 4, 1, 2, 5})
	assert.True(t, arrangement.IsPlanar(rt.Graph, arr))
	assert.False(t, arrangement.IsRootCovered(rt, arr))
	assert.True(t, arrangement.IsProjective(rt, arr))
}

func TestIsPlanarDetectsCrossing(t *testing.T) {
	rt := core.NewRootedTreeAt(6, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(0, 2)
	rt.AddEdge(1, 3)
	rt.AddEdge(1, 4)
	rt.AddEdge(2, 5)
	// Identity layout interleaves (0,2) and (1,3): not planar.
	arr := core.NewIdentityArrangement(6)
	assert.False(t, arrangement.IsPlanar(rt.Graph, arr))
}

func TestCrossingsMatchesBruteForce(t *testing.T) {
	g := core.NewUndirectedGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(1, 4)
	g.AddEdge(2, 5)
	// A scrambled, deliberately crossing arrangement.
	arr := core.NewArrangement([]int{3, 0, 4, 1, 5, 2})
	require.Equal(t, arrangement.CrossingsBruteForce(g, arr), arrangement.Crossings(g, arr))
	assert.Greater(t, arrangement.Crossings(g, arr), int64(0))
}

func TestIsBipartite(t *testing.T) {
	g := core.NewUndirectedGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	colors := []int{0, 1, 0, 1}
	arr := core.NewArrangement([]int{0, 2, 1, 3}) // {0,2} then {1,3}
	assert.True(t, arrangement.IsBipartite(g, colors, arr))

	bad := core.NewIdentityArrangement(4)
	assert.False(t, arrangement.IsBipartite(g, colors, bad))
}
