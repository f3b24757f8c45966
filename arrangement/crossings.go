package arrangement

import "github.com/arjun-meyer/lal/core"

type edgeSpan struct{ lo, hi int }

func edgeSpans(g *core.Graph, arr *core.LinearArrangement) []edgeSpan {
	n := g.N()
	spans := make([]edgeSpan, 0, g.M())
	for u := 0; u < n; u++ {
		pu := arr.Position(u)
		for _, v := range g.Neighbors(u) {
			if v <= u {
				continue
			}
			pv := arr.Position(v)
			if pu < pv {
				spans = append(spans, edgeSpan{pu, pv})
			} else {
				spans = append(spans, edgeSpan{pv, pu})
			}
		}
	}
	return spans
}

// CrossingsBruteForce counts crossing edge pairs in O(m^2) by direct
// pairwise comparison, kept to cross-check the faster Crossings in tests.
func CrossingsBruteForce(g *core.Graph, arr *core.LinearArrangement) int64 {
	spans := edgeSpans(g, arr)
	var count int64
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if interleave(spans[i], spans[j]) {
				count++
			}
		}
	}
	return count
}

func interleave(a, b edgeSpan) bool {
	return (a.lo < b.lo && b.lo < a.hi && a.hi < b.hi) ||
		(b.lo < a.lo && a.lo < b.hi && b.hi < a.hi)
}

// Crossings counts C(G,π), the number of unordered edge pairs whose
// position spans strictly interleave, in O(m log n) via a Fenwick-tree
// sweep: edges are grouped by their left endpoint and processed in
// increasing order; for each edge (l,h), query how many previously
// inserted edges' right endpoints fall strictly inside (l,h), then
// insert this edge's right endpoint.
func Crossings(g *core.Graph, arr *core.LinearArrangement) int64 {
	n := g.N()
	spans := edgeSpans(g, arr)
	if len(spans) < 2 {
		return 0
	}

	byLo := make([][]int, n) // byLo[l] = list of hi values of edges with that left endpoint
	for _, s := range spans {
		byLo[s.lo] = append(byLo[s.lo], s.hi)
	}

	bit := newFenwick(n)
	var count int64
	for l := 0; l < n; l++ {
		for _, h := range byLo[l] {
			// positions strictly between l and h: (l+1 .. h-1)
			if h-1 >= l+1 {
				count += int64(bit.rangeSum(l+1, h-1))
			}
		}
		for _, h := range byLo[l] {
			bit.add(h, 1)
		}
	}
	return count
}

type fenwick struct {
	tree []int
	n    int
}

func newFenwick(n int) *fenwick { return &fenwick{tree: make([]int, n+1), n: n} }

func (f *fenwick) add(i, delta int) {
	for i++; i <= f.n; i += i & (-i) {
		f.tree[i] += delta
	}
}

func (f *fenwick) prefixSum(i int) int {
	sum := 0
	for ; i > 0; i -= i & (-i) {
		sum += f.tree[i]
	}
	return sum
}

func (f *fenwick) rangeSum(lo, hi int) int {
	if hi < lo {
		return 0
	}
	return f.prefixSum(hi+1) - f.prefixSum(lo)
}
