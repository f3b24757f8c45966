package numeric_test

import (
	"math/big"
	"testing"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestExpectedDStar(t *testing.T) {
	g, err := core.FromEdgeListGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}}, false)
	require.NoError(t, err)

	got, err := numeric.ExpectedD(g)
	require.NoError(t, err)
	assert.Equal(t, rat(5, 1), got)
}

func TestVarianceDStar(t *testing.T) {
	g, err := core.FromEdgeListGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}}, false)
	require.NoError(t, err)

	got, err := numeric.VarianceD(g)
	require.NoError(t, err)
	assert.Equal(t, rat(1, 1), got)
}

// Two trees on the same number of vertices and edges but different shapes
// (star vs path) share E[D] = m(n+1)/3 but differ in Var[D], since
// variance depends on how many edge pairs share a vertex.
func TestExpectedDDependsOnlyOnCounts(t *testing.T) {
	star, err := core.FromEdgeListGraph(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, false)
	require.NoError(t, err)
	path, err := core.FromEdgeListGraph(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, false)
	require.NoError(t, err)

	eStar, err := numeric.ExpectedD(star)
	require.NoError(t, err)
	ePath, err := numeric.ExpectedD(path)
	require.NoError(t, err)
	assert.Equal(t, rat(8, 1), eStar)
	assert.Equal(t, eStar, ePath)

	vStar, err := numeric.VarianceD(star)
	require.NoError(t, err)
	vPath, err := numeric.VarianceD(path)
	require.NoError(t, err)
	assert.Equal(t, rat(14, 5), vStar)
	assert.Equal(t, rat(13, 5), vPath)
	assert.NotEqual(t, vStar, vPath)
}

func TestVarianceDMixedShapeTree(t *testing.T) {
	g, err := core.FromEdgeListGraph(6, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}}, false)
	require.NoError(t, err)

	mean, err := numeric.ExpectedD(g)
	require.NoError(t, err)
	assert.Equal(t, rat(35, 3), mean)

	v, err := numeric.VarianceD(g)
	require.NoError(t, err)
	assert.Equal(t, rat(49, 9), v)
}

func TestExpectedDTooFewVertices(t *testing.T) {
	g, err := core.FromEdgeListGraph(1, nil, false)
	require.NoError(t, err)
	_, err = numeric.ExpectedD(g)
	assert.ErrorIs(t, err, numeric.ErrTooFewVertices)
}

// A star's projective arrangements are exactly its n! arrangements: the
// root has no constraint relative to leaves that never connect to each
// other, so the constrained statistics must match the unconstrained ones.
func TestProjectiveStatsMatchUnconstrainedForStar(t *testing.T) {
	rt := core.NewRootedTreeAt(4, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(0, 2)
	rt.AddEdge(0, 3)

	eProj, err := numeric.ExpectedDOverProjective(rt)
	require.NoError(t, err)
	eUnconstrained, err := numeric.ExpectedD(rt.ToFreeTree().Graph)
	require.NoError(t, err)
	assert.Equal(t, eUnconstrained, eProj)

	vProj, err := numeric.VarianceDOverProjective(rt)
	require.NoError(t, err)
	vUnconstrained, err := numeric.VarianceD(rt.ToFreeTree().Graph)
	require.NoError(t, err)
	assert.Equal(t, vUnconstrained, vProj)
}

// A 4-vertex path rooted at one end has 8 projective arrangements (out of
// 24 total), with mean 9/2 and variance 5/4 — confirmed by direct
// enumeration of the contiguous-subtree constraint.
func TestProjectiveStatsPathRootedAtEnd(t *testing.T) {
	rt := core.NewRootedTreeAt(4, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(1, 2)
	rt.AddEdge(2, 3)

	mean, err := numeric.ExpectedDOverProjective(rt)
	require.NoError(t, err)
	assert.Equal(t, rat(9, 2), mean)

	v, err := numeric.VarianceDOverProjective(rt)
	require.NoError(t, err)
	assert.Equal(t, rat(5, 4), v)
}

func TestPlanarStatsMatchUnconstrainedForStar(t *testing.T) {
	g, err := core.FromEdgeListGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}}, false)
	require.NoError(t, err)

	eUnconstrained, err := numeric.ExpectedD(g)
	require.NoError(t, err)
	ePlanar, err := numeric.ExpectedDOverPlanar(g)
	require.NoError(t, err)
	assert.Equal(t, eUnconstrained, ePlanar)
}
