package generate

import (
	"math/rand"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/isomorphism"
)

// AllLabRootedTrees enumerates every labeled rooted tree on n vertices: one
// entry per (labeled free tree, choice of root) pair.
func AllLabRootedTrees(n int) ([]*core.RootedTree, error) {
	free, err := AllLabFreeTrees(n)
	if err != nil {
		return nil, err
	}

	rooted := make([]*core.RootedTree, 0, len(free)*n)
	for _, t := range free {
		for r := 0; r < n; r++ {
			rooted = append(rooted, rootAt(t, r))
		}
	}
	return rooted, nil
}

// RandLabRootedTree draws a uniformly random labeled free tree and roots
// it at a uniformly random vertex.
func RandLabRootedTree(n int, rng *rand.Rand) (*core.RootedTree, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	t, err := RandLabFreeTree(n, rng)
	if err != nil {
		return nil, err
	}
	return rootAt(t, rng.Intn(n)), nil
}

// AllUlabRootedTrees enumerates one representative per isomorphism class of
// unlabeled rooted trees on n vertices (rooted isomorphism: same shape
// relative to the root, not just as free trees).
func AllUlabRootedTrees(n int) ([]*core.RootedTree, error) {
	labeled, err := AllLabRootedTrees(n)
	if err != nil {
		return nil, err
	}

	var reps []*core.RootedTree
	for _, rt := range labeled {
		isNew := true
		for _, r := range reps {
			if isomorphism.AreRootedTreesIsomorphicDefault(rt, r, isomorphism.String) {
				isNew = false
				break
			}
		}
		if isNew {
			reps = append(reps, rt)
		}
	}
	return reps, nil
}

// rootAt builds a RootedTree on t's vertex set, rooted at r, with the same
// edges as t.
func rootAt(t *core.FreeTree, r int) *core.RootedTree {
	rt := core.NewRootedTreeAt(t.N(), r)
	seen := make([]bool, t.N())
	seen[r] = true
	stack := []int{r}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range t.Neighbors(u) {
			if seen[v] {
				continue
			}
			seen[v] = true
			rt.AddEdge(u, v)
			stack = append(stack, v)
		}
	}
	return rt
}
