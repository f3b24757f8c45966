package isomorphism_test

import (
	"testing"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/isomorphism"
	"github.com/stretchr/testify/assert"
)

func buildRooted(n, root int, edges [][2]int) *core.RootedTree {
	rt := core.NewRootedTreeAt(n, root)
	for _, e := range edges {
		rt.AddEdge(e[0], e[1])
	}
	return rt
}

func TestRootedTreesIsomorphicAcrossAlgorithms(t *testing.T) {
	// T1 = {(0,1),(0,2),(1,3),(1,4)} rooted at 0.
	t1 := buildRooted(5, 0, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}})
	// T2 = {(2,0),(2,1),(0,3),(0,4)} rooted at 2: relabelling of T1.
	t2 := buildRooted(5, 2, [][2]int{{2, 0}, {2, 1}, {0, 3}, {0, 4}})

	for _, algo := range []isomorphism.Algorithm{isomorphism.String, isomorphism.TupleSmall, isomorphism.TupleLarge} {
		assert.True(t, isomorphism.AreRootedTreesIsomorphicDefault(t1, t2, algo))
	}
}

func TestRootedTreesNotIsomorphicWhenRerooted(t *testing.T) {
	t1 := buildRooted(5, 0, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}})
	// Same edge set as T2 above, but rooted at 0 instead of 2: the root
	// now has degree 3 in the underlying tree instead of degree 2.
	t2 := buildRooted(5, 0, [][2]int{{2, 0}, {2, 1}, {0, 3}, {0, 4}})

	for _, algo := range []isomorphism.Algorithm{isomorphism.String, isomorphism.TupleSmall, isomorphism.TupleLarge} {
		assert.False(t, isomorphism.AreRootedTreesIsomorphicDefault(t1, t2, algo))
	}
}

func TestFastNonIsoDetectsSizeMismatch(t *testing.T) {
	f1, err := core.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	assert.NoError(t, err)
	f2, err := core.FromEdgeList(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	assert.NoError(t, err)
	assert.Equal(t, 1, isomorphism.FastNonIso(f1, f2))
}

func TestFastNonIsoDetectsDegreeSequenceMismatch(t *testing.T) {
	// A star K_{1,4} vs a path P5: same n and m, different shapes.
	star, err := core.FromEdgeList(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	assert.NoError(t, err)
	path, err := core.FromEdgeList(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	assert.NoError(t, err)
	assert.Equal(t, 1, isomorphism.FastNonIso(star, path))
	assert.False(t, isomorphism.AreTreesIsomorphic(star, path, isomorphism.String, true))
}

func TestFreeTreesIsomorphicViaCentre(t *testing.T) {
	// Two distinct labelled paths of length 5 are always isomorphic as
	// free trees, regardless of which endpoint/ordering was used to
	// build them.
	p1, err := core.FromEdgeList(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	assert.NoError(t, err)
	p2, err := core.FromEdgeList(5, [][2]int{{4, 3}, {3, 2}, {2, 1}, {1, 0}})
	assert.NoError(t, err)
	assert.True(t, isomorphism.AreTreesIsomorphic(p1, p2, isomorphism.TupleSmall, true))
}

func TestTinyTreesAlwaysIsomorphic(t *testing.T) {
	a, err := core.FromEdgeList(3, [][2]int{{0, 1}, {1, 2}})
	assert.NoError(t, err)
	b, err := core.FromEdgeList(3, [][2]int{{2, 0}, {0, 1}})
	assert.NoError(t, err)
	assert.True(t, isomorphism.AreTreesIsomorphic(a, b, isomorphism.String, true))
}
