package levelsig_test

import (
	"testing"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/levelsig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerVertexSumsToZero(t *testing.T) {
	g := core.NewUndirectedGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	arr := core.NewIdentityArrangement(5)
	levels := levelsig.PerVertex(g, arr)
	sum := 0
	for _, l := range levels {
		sum += l
	}
	assert.Zero(t, sum)
}

func TestMirrorInvolution(t *testing.T) {
	g := core.NewUndirectedGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	arr := core.NewIdentityArrangement(5)
	perPos := levelsig.PerPosition(g, arr)

	mirrored := levelsig.MirrorPerPosition(perPos)
	back := levelsig.MirrorPerPosition(mirrored)
	assert.Equal(t, perPos, back)
}

func TestIsomorphicSignatureDirectAndMirror(t *testing.T) {
	a := []int{2, 1, 0, -1, -2}
	require.True(t, levelsig.IsomorphicSignature(a, a, true))
	mirrored := levelsig.MirrorPerPosition(a)
	assert.True(t, levelsig.IsomorphicSignature(a, mirrored, true))
	other := []int{2, 1, 1, -1, -3}
	assert.False(t, levelsig.IsomorphicSignature(a, other, true))
}

func TestNonIncreasingMaxArrangementPath(t *testing.T) {
	g := core.NewUndirectedGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	// A maximum arrangement for P5 (D=11): node->position table
	// [2,0,4,1,3], i.e. node-at-position sequence (1,3,0,4,2).
	arr := core.NewArrangement([]int{2, 0, 4, 1, 3})
	perPos := levelsig.PerPosition(g, arr)
	assert.True(t, levelsig.IsNonIncreasingPerPosition(perPos))
}

func TestThistle(t *testing.T) {
	assert.True(t, levelsig.IsThistle(0, 2))
	assert.False(t, levelsig.IsThistle(2, 2))
	assert.False(t, levelsig.IsThistle(-2, 2))
}
