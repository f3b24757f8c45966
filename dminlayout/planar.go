package dminlayout

import "github.com/arjun-meyer/lal/core"

// Planar computes a minimum-D arrangement of the free tree t that is
// planar (zero crossings), by rooting t at one of its centroids and
// running the same interval recursion as Projective. Runs in O(n).
func Planar(t *core.FreeTree) (int64, *core.LinearArrangement) {
	n := t.N()
	if n <= 1 {
		if n == 1 {
			return 0, core.NewIdentityArrangement(1)
		}
		return 0, core.NewEmptyArrangement()
	}

	c := centroid(t.Graph)
	rt := core.NewRootedTreeAt(n, c)
	for u := 0; u < n; u++ {
		for _, v := range t.Neighbors(u) {
			if v > u {
				rt.AddEdge(u, v)
			}
		}
	}
	return Projective(rt)
}
