package generate

import (
	"math/rand"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/isomorphism"
)

// AllLabFreeTrees enumerates every labeled free tree on n vertices via
// Prüfer sequences (Cayley's formula: n^(n-2) of them for n>=2), using the
// standard sequence-based construction.
func AllLabFreeTrees(n int) ([]*core.FreeTree, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if n == 1 {
		return []*core.FreeTree{core.NewFreeTree(1)}, nil
	}
	if n == 2 {
		return []*core.FreeTree{pruferDecode([]int{}, 2)}, nil
	}

	seqLen := n - 2
	seq := make([]int, seqLen)
	trees := make([]*core.FreeTree, 0, intPow(n, seqLen))

	for {
		trees = append(trees, pruferDecode(seq, n))

		// odometer increment over base-n digits, least significant first
		i := 0
		for ; i < seqLen; i++ {
			seq[i]++
			if seq[i] < n {
				break
			}
			seq[i] = 0
		}
		if i == seqLen {
			break
		}
	}
	return trees, nil
}

// RandLabFreeTree draws one labeled free tree on n vertices uniformly at
// random via a random Prüfer sequence (every sequence of length n-2 over
// [0,n) is equally likely and decodes to a distinct labeled tree, so
// uniform sequence sampling is uniform tree sampling).
func RandLabFreeTree(n int, rng *rand.Rand) (*core.FreeTree, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if n == 1 {
		return core.NewFreeTree(1), nil
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rng.Intn(n)
	}
	return pruferDecode(seq, n), nil
}

// AllUlabFreeTrees enumerates one representative per isomorphism class of
// unlabeled free trees on n vertices, by generating every labeled tree and
// discarding any isomorphic to one already kept.
func AllUlabFreeTrees(n int) ([]*core.FreeTree, error) {
	labeled, err := AllLabFreeTrees(n)
	if err != nil {
		return nil, err
	}

	var reps []*core.FreeTree
	for _, t := range labeled {
		isNew := true
		for _, r := range reps {
			if isomorphism.AreTreesIsomorphic(t, r, isomorphism.String, true) {
				isNew = false
				break
			}
		}
		if isNew {
			reps = append(reps, t)
		}
	}
	return reps, nil
}

// pruferDecode reconstructs the labeled free tree on n vertices (0..n-1)
// encoded by the Prüfer sequence seq (length n-2): repeatedly connect the
// smallest-labeled current leaf to the next sequence entry, then join the
// two vertices left standing.
func pruferDecode(seq []int, n int) *core.FreeTree {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	t := core.NewFreeTree(n)
	for _, v := range seq {
		leaf := smallestLeaf(degree)
		t.AddEdge(leaf, v)
		degree[leaf]--
		degree[v]--
	}

	// two vertices remain with degree 1; connect them.
	var u, w int
	found := 0
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			if found == 0 {
				u = i
			} else {
				w = i
			}
			found++
		}
	}
	t.AddEdge(u, w)
	return t
}

func smallestLeaf(degree []int) int {
	for i, d := range degree {
		if d == 1 {
			return i
		}
	}
	panic("generate: contract violation: no leaf remaining in Prüfer decode")
}

func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
