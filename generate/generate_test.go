package generate_test

import (
	"math/rand"
	"testing"

	"github.com/arjun-meyer/lal/arrangement"
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cayley's formula: n^(n-2) labeled trees on n vertices.
func TestAllLabFreeTreesCount(t *testing.T) {
	for n := 2; n <= 5; n++ {
		trees, err := generate.AllLabFreeTrees(n)
		require.NoError(t, err)
		want := 1
		for i := 0; i < n-2; i++ {
			want *= n
		}
		assert.Len(t, trees, want, "n=%d", n)
		for _, tr := range trees {
			assert.Equal(t, n-1, tr.M(), "n=%d tree has wrong edge count", n)
		}
	}
}

func TestAllLabFreeTreesSingleVertex(t *testing.T) {
	trees, err := generate.AllLabFreeTrees(1)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, 0, trees[0].M())
}

func TestRandLabFreeTreeIsATree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 2; n <= 8; n++ {
		tr, err := generate.RandLabFreeTree(n, rng)
		require.NoError(t, err)
		assert.Equal(t, n-1, tr.M())
	}
}

func TestRandLabFreeTreeNeedsRNG(t *testing.T) {
	_, err := generate.RandLabFreeTree(5, nil)
	assert.ErrorIs(t, err, generate.ErrNeedRandSource)
}

// There are exactly 3 unlabeled trees on 5 vertices (path, star, and the
// "chair"/caterpillar shape); this is a standard small-tree count.
func TestAllUlabFreeTreesCountOnFive(t *testing.T) {
	reps, err := generate.AllUlabFreeTrees(5)
	require.NoError(t, err)
	assert.Len(t, reps, 3)
}

func TestAllLabRootedTreesCount(t *testing.T) {
	n := 4
	free, err := generate.AllLabFreeTrees(n)
	require.NoError(t, err)
	rooted, err := generate.AllLabRootedTrees(n)
	require.NoError(t, err)
	assert.Len(t, rooted, len(free)*n)
}

func TestAllArrangementsCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		arrs, err := generate.AllArrangements(n)
		require.NoError(t, err)
		want := 1
		for i := 2; i <= n; i++ {
			want *= i
		}
		assert.Len(t, arrs, want, "n=%d", n)
	}
}

func TestAllArrangementsAreDistinctPermutations(t *testing.T) {
	arrs, err := generate.AllArrangements(4)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, arr := range arrs {
		require.True(t, arrangement.IsPermutation(arr.Positions()))
		key := ""
		for _, p := range arr.Positions() {
			key += string(rune('0' + p))
		}
		assert.False(t, seen[key], "duplicate arrangement %s", key)
		seen[key] = true
	}
}

// A star rooted at its center: every arrangement is projective, since the
// center is free to sit anywhere among its own leaves and leaves never
// connect to each other.
func TestAllProjectiveArrangementsStar(t *testing.T) {
	rt := core.NewRootedTreeAt(4, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(0, 2)
	rt.AddEdge(0, 3)

	all, err := generate.AllArrangements(4)
	require.NoError(t, err)
	proj, err := generate.AllProjectiveArrangements(rt)
	require.NoError(t, err)
	assert.Equal(t, len(all), len(proj))
}

func TestRandProjectiveArrangementIsProjective(t *testing.T) {
	rt := core.NewRootedTreeAt(6, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(1, 2)
	rt.AddEdge(0, 3)
	rt.AddEdge(3, 4)
	rt.AddEdge(3, 5)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		arr, err := generate.RandProjectiveArrangement(rt, rng)
		require.NoError(t, err)
		assert.True(t, arrangement.IsProjective(rt, arr))
	}
}

func TestRandBipartiteArrangementIsBipartite(t *testing.T) {
	g := core.NewUndirectedGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	colors := []int{0, 1, 0, 1, 0, 1}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		arr, err := generate.RandBipartiteArrangement(g, colors, rng)
		require.NoError(t, err)
		assert.True(t, arrangement.IsBipartite(g, colors, arr))
	}
}
