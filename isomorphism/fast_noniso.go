package isomorphism

import (
	"sort"

	"github.com/arjun-meyer/lal/core"
)

// FastNonIso applies a handful of O(n log n) necessary conditions for
// isomorphism of the two free trees before any encoding is built. It
// returns 0 when the trees are known to be isomorphic without further
// work (trivially small trees), 1 when they are known NOT to be
// isomorphic, and 2 when the question remains open and a full algorithm
// must decide it.
func FastNonIso(t1, t2 *core.FreeTree) int {
	n1, n2 := t1.N(), t2.N()
	if n1 != n2 {
		return 1
	}
	// Every tree on 1, 2 or 3 vertices is isomorphic to every other tree
	// of the same size: there is only one shape.
	if n1 <= 3 {
		return 0
	}
	if t1.M() != t2.M() {
		return 1
	}
	d1, d2 := sortedDegrees(t1), sortedDegrees(t2)
	for i := range d1 {
		if d1[i] != d2[i] {
			return 1
		}
	}
	return 2
}

func sortedDegrees(t *core.FreeTree) []int {
	n := t.N()
	d := make([]int, n)
	for u := 0; u < n; u++ {
		d[u] = t.Degree(u)
	}
	sort.Ints(d)
	return d
}
