package arrangement

import "github.com/arjun-meyer/lal/core"

// IsPermutation reports whether pos is a bijection onto [0,len(pos)).
func IsPermutation(pos []int) bool {
	n := len(pos)
	seen := make([]bool, n)
	for _, p := range pos {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// IsArrangement reports whether arr is a permutation whose length equals
// g's vertex count.
func IsArrangement(g *core.Graph, arr *core.LinearArrangement) bool {
	if arr.Size() != g.N() {
		return false
	}
	return IsPermutation(arr.Positions())
}

// D computes the edge-length sum D(G,π) = sum over edges of
// |π(u)-π(v)|. Each undirected edge is counted once.
func D(g *core.Graph, arr *core.LinearArrangement) int64 {
	var sum int64
	n := g.N()
	for u := 0; u < n; u++ {
		pu := arr.Position(u)
		for _, v := range g.Neighbors(u) {
			if v <= u {
				continue // undirected: count each edge once
			}
			pv := arr.Position(v)
			if pu > pv {
				sum += int64(pu - pv)
			} else {
				sum += int64(pv - pu)
			}
		}
	}
	return sum
}

// IsRootCovered reports whether some edge (s,t) of the rooted tree rt
// spans the root's position: π(s) < π(root) < π(t) (or the mirror).
func IsRootCovered(rt *core.RootedTree, arr *core.LinearArrangement) bool {
	root := rt.Root()
	pr := arr.Position(root)
	n := rt.N()
	for u := 0; u < n; u++ {
		if u == root {
			continue
		}
		pu := arr.Position(u)
		for _, v := range rt.Neighbors(u) {
			if v <= u {
				continue
			}
			pv := arr.Position(v)
			lo, hi := pu, pv
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo < pr && pr < hi {
				return true
			}
		}
	}
	return false
}

// IsPlanar reports whether C(G,π) == 0.
func IsPlanar(g *core.Graph, arr *core.LinearArrangement) bool {
	return Crossings(g, arr) == 0
}

// IsProjective reports whether arr is planar for rt and does not cover
// the root.
func IsProjective(rt *core.RootedTree, arr *core.LinearArrangement) bool {
	return IsPlanar(rt.Graph, arr) && !IsRootCovered(rt, arr)
}

// IsBipartite reports whether, sweeping positions 0..n-1 under the
// 2-coloring c, the sequence of colors changes at most once: the
// arrangement places one color class as a contiguous prefix and the
// other as the contiguous suffix.
func IsBipartite(g *core.Graph, c []int, arr *core.LinearArrangement) bool {
	n := g.N()
	changes := 0
	for p := 1; p < n; p++ {
		prev := c[arr.NodeAt(p-1)]
		cur := c[arr.NodeAt(p)]
		if prev != cur {
			changes++
			if changes > 1 {
				return false
			}
		}
	}
	return true
}
