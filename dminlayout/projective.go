package dminlayout

import "github.com/arjun-meyer/lal/core"

// Projective computes a minimum-D arrangement of rt that is projective:
// planar, and with the root never covered by a descendant edge. Runs in
// O(n).
func Projective(rt *core.RootedTree) (int64, *core.LinearArrangement) {
	n := rt.N()
	arr := core.NewEmptyArrangement()
	if n <= 1 {
		if n == 1 {
			arr = core.NewIdentityArrangement(1)
		}
		return 0, arr
	}

	positions := make([]int, n)
	arr = core.NewArrangement(positions)

	L := sizeSortedAdjacency(rt)
	D := optimalIntervalOf(L, rt.Root(), placeNoneOf, 0, n-1, arr)
	return D, arr
}
