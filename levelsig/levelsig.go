package levelsig

import "github.com/arjun-meyer/lal/core"

// PerVertex computes L(u) = #{v : uv in E, pos(v) > pos(u)} -
// #{v : uv in E, pos(v) < pos(u)}, indexed by vertex. The sum of the
// result is always zero.
func PerVertex(g *core.Graph, arr *core.LinearArrangement) []int {
	n := g.N()
	levels := make([]int, n)
	for u := 0; u < n; u++ {
		pu := arr.Position(u)
		l := 0
		for _, v := range g.Neighbors(u) {
			if arr.Position(v) > pu {
				l++
			} else {
				l--
			}
		}
		levels[u] = l
	}
	return levels
}

// PerPosition computes the per-vertex signature reindexed by position:
// result[p] = L(arr.NodeAt(p)).
func PerPosition(g *core.Graph, arr *core.LinearArrangement) []int {
	perVertex := PerVertex(g, arr)
	n := g.N()
	out := make([]int, n)
	for p := 0; p < n; p++ {
		out[p] = perVertex[arr.NodeAt(p)]
	}
	return out
}

// MirrorPerPosition reverses and negates a per-position signature,
// matching a mirrored arrangement (positions reverse, and each vertex's
// left/right neighbor counts swap, negating its level).
func MirrorPerPosition(perPos []int) []int {
	n := len(perPos)
	out := make([]int, n)
	for p := 0; p < n; p++ {
		out[p] = -perPos[n-1-p]
	}
	return out
}

// MirrorPerVertex negates a per-vertex signature. Reversing the
// underlying arrangement does not reorder the per-vertex indexing (it is
// still indexed by vertex id), so only the sign flips.
func MirrorPerVertex(perVertex []int) []int {
	out := make([]int, len(perVertex))
	for i, l := range perVertex {
		out[i] = -l
	}
	return out
}

// Equal reports element-wise equality of two signatures of the same kind.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsomorphicSignature reports whether a and b (both of the same kind —
// both per-vertex, or both per-position) are equal directly or after
// mirroring.
func IsomorphicSignature(a, b []int, perPosition bool) bool {
	if Equal(a, b) {
		return true
	}
	var mb []int
	if perPosition {
		mb = MirrorPerPosition(b)
	} else {
		mb = MirrorPerVertex(b)
	}
	return Equal(a, mb)
}

// IsNonIncreasingPerPosition checks the per-position sequence alone,
// without consulting the arrangement: this is a property of the
// sequence, full stop, and never reads the arrangement itself.
func IsNonIncreasingPerPosition(perPos []int) bool {
	for p := 0; p+1 < len(perPos); p++ {
		if perPos[p] < perPos[p+1] {
			return false
		}
	}
	return true
}

// IsNonIncreasingPerVertex checks the per-vertex signature but reads
// arr.NodeAt(p) / arr.NodeAt(p+1) to compare consecutive positions rather
// than indexing the signature directly by position. Kept distinct from
// IsNonIncreasingPerPosition deliberately — do not unify them.
func IsNonIncreasingPerVertex(perVertex []int, arr *core.LinearArrangement) bool {
	for p := 0; p+1 < arr.Size(); p++ {
		if perVertex[arr.NodeAt(p)] < perVertex[arr.NodeAt(p+1)] {
			return false
		}
	}
	return true
}

// NoEqualAdjacentLevels reports whether every edge connects vertices of
// different level — a necessary condition for a maximum arrangement.
func NoEqualAdjacentLevels(g *core.Graph, perVertex []int) bool {
	n := g.N()
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			if v > u && perVertex[u] == perVertex[v] {
				return false
			}
		}
	}
	return true
}

// IsThistle reports whether u's level lies strictly between -deg(u) and
// +deg(u): neither all of u's neighbors are to one side.
func IsThistle(level, degree int) bool {
	return level > -degree && level < degree
}
