package numeric

import (
	"math/big"

	"github.com/arjun-meyer/lal/core"
)

// VarianceD returns the exact variance of D under the uniform distribution
// over all n! linear arrangements of g's n vertices.
//
// D is a sum of per-edge lengths, so Var[D] splits into a per-edge
// variance term plus a covariance term for every pair of edges; the
// covariance depends only on whether the two edges share a vertex (a
// "shared" pair) or not (a "disjoint" pair), never on which specific
// vertices are involved — so the three building blocks (Var of one edge
// length, Cov of a shared pair, Cov of a disjoint pair) are pure functions
// of n, and g's own structure only decides how many of each pair shape it
// has. See DESIGN.md for the derivation and its brute-force cross-check.
func VarianceD(g *core.Graph) (*big.Rat, error) {
	n := int64(g.N())
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	m := int64(g.M())

	numPairs := n * (n - 1)
	el := big.NewRat(n+1, 3)
	el2 := big.NewRat(0, 1).SetFrac(sumOfSquaredDistanceTotal(n), big.NewInt(numPairs))
	elSq := new(big.Rat).Mul(el, el)
	varLe := new(big.Rat).Sub(el2, elSq)

	sharedPairs, disjointPairs := pairShapeCounts(g)

	total := new(big.Rat).Mul(big.NewRat(m, 1), varLe)

	if sharedPairs > 0 {
		numTriples := n * (n - 1) * (n - 2)
		elShared := new(big.Rat).SetFrac(sharedVertexTotal(n), big.NewInt(numTriples))
		covShared := new(big.Rat).Sub(elShared, elSq)
		term := new(big.Rat).Mul(big.NewRat(2*sharedPairs, 1), covShared)
		total.Add(total, term)
	}

	if disjointPairs > 0 {
		numQuads := fallingFactorial(n, 4)
		elDisjoint := new(big.Rat).SetFrac(disjointPairTotal(n), numQuads)
		covDisjoint := new(big.Rat).Sub(elDisjoint, elSq)
		term := new(big.Rat).Mul(big.NewRat(2*disjointPairs, 1), covDisjoint)
		total.Add(total, term)
	}

	return total, nil
}

// pairShapeCounts returns how many unordered pairs of g's edges share a
// vertex versus are vertex-disjoint.
func pairShapeCounts(g *core.Graph) (shared, disjoint int64) {
	n := g.N()
	m := int64(g.M())
	for u := 0; u < n; u++ {
		d := int64(g.Degree(u))
		shared += d * (d - 1) / 2
	}
	total := m * (m - 1) / 2
	disjoint = total - shared
	return shared, disjoint
}
