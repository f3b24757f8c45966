package isomorphism

import (
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/treetop"
)

// AreRootedTreesIsomorphic decides whether the subtree of t1 rooted at r1
// is isomorphic, as a rooted tree, to the subtree of t2 rooted at r2,
// using the requested encoding.
func AreRootedTreesIsomorphic(t1 *core.FreeTree, r1 int, t2 *core.FreeTree, r2 int, algo Algorithm) bool {
	switch algo {
	case TupleSmall:
		return areRootedTreesIsomorphicTupleSmall(t1, r1, t2, r2)
	case TupleLarge:
		return areRootedTreesIsomorphicTupleLarge(t1, r1, t2, r2)
	default:
		return areRootedTreesIsomorphicString(t1, r1, t2, r2)
	}
}

// AreRootedTreesIsomorphicDefault decides isomorphism of two already-rooted
// trees (their own Root()), running the fast sieve first. Only the
// sieve's "not isomorphic" verdict is used: two free trees of equal shape
// can still differ as rooted trees.
func AreRootedTreesIsomorphicDefault(t1, t2 *core.RootedTree, algo Algorithm) bool {
	f1, f2 := t1.ToFreeTree(), t2.ToFreeTree()
	if FastNonIso(f1, f2) == 1 {
		return false
	}
	return AreRootedTreesIsomorphic(f1, t1.Root(), f2, t2.Root(), algo)
}

// AreTreesIsomorphic decides whether two free (unrooted) trees are
// isomorphic. It runs the fast sieve, then reduces the problem to rooted
// isomorphism at the trees' centres: a tree has either one centre (in
// which case centres must match one-to-one) or two adjacent centres (in
// which case either pairing of the two trees' centres may align).
func AreTreesIsomorphic(t1, t2 *core.FreeTree, algo Algorithm, checkFastNonIso bool) bool {
	if checkFastNonIso {
		switch FastNonIso(t1, t2) {
		case 0:
			return true
		case 1:
			return false
		}
	}

	n := t1.N()
	if n <= 3 {
		return true
	}

	c1a, c1b := treetop.Centre(t1)
	c2a, c2b := treetop.Centre(t2)
	size1, size2 := centreSize(c1b, n), centreSize(c2b, n)
	if size1 != size2 {
		return false
	}

	if size1 == 1 {
		return AreRootedTreesIsomorphic(t1, c1a, t2, c2a, algo)
	}

	if AreRootedTreesIsomorphic(t1, c1a, t2, c2a, algo) {
		return true
	}
	return AreRootedTreesIsomorphic(t1, c1a, t2, c2b, algo)
}

func centreSize(second, n int) int {
	if second < n {
		return 2
	}
	return 1
}
