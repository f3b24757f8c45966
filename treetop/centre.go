package treetop

import "github.com/arjun-meyer/lal/core"

// Centre returns the one or two central vertices of t (minimum
// eccentricity), with v1 < v2. When the centre is a single vertex, v2 is
// n+1 — a sentinel outside the valid vertex range — rather than a
// negative value (testable property: "exactly
// one of the two return values is the invalid sentinel iff the centre
// has a single vertex").
//
// Algorithm: iteratively strip leaves in layers (two generations: the
// current layer being peeled and the next layer it exposes), stopping
// once at most two vertices remain. Complexity: O(n).
func Centre(t *core.FreeTree) (int, int) {
	n := t.N()
	if n == 0 {
		return 0, 1
	}
	if n == 1 {
		return 0, 1
	}

	degree := make([]int, n)
	for u := 0; u < n; u++ {
		degree[u] = t.Degree(u)
	}

	var layer []int
	for u := 0; u < n; u++ {
		if degree[u] <= 1 {
			layer = append(layer, u)
		}
	}

	remaining := n
	for remaining > 2 {
		var next []int
		for _, u := range layer {
			remaining--
			for _, v := range t.Neighbors(u) {
				if degree[v] <= 0 {
					continue
				}
				degree[v]--
				if degree[v] == 1 {
					next = append(next, v)
				}
			}
			degree[u] = 0
		}
		layer = next
	}

	switch len(layer) {
	case 1:
		return layer[0], n + 1
	default:
		v1, v2 := layer[0], layer[1]
		if v1 > v2 {
			v1, v2 = v2, v1
		}
		return v1, v2
	}
}

// IsCentreSingle reports whether Centre(t) identifies a single central
// vertex (v2 == n+1).
func IsCentreSingle(t *core.FreeTree, v2 int) bool { return v2 == t.N()+1 }
