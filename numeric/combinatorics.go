package numeric

import "math/big"

// The helpers below total, over every ordered tuple of *distinct* values
// drawn from {0,...,n-1}, various combinations of |a-b| terms. Each is a
// closed-form polynomial in n, derived by direct summation (see
// DESIGN.md's numeric entry for the full derivation) and verified against
// brute-force enumeration of the underlying tuples for small n. They are
// the building blocks ExpectedD/VarianceD combine with a graph's edge
// structure.

// sumOfSquares returns sum_{i=1}^{k} i^2 = k(k+1)(2k+1)/6, for k >= 0.
func sumOfSquares(k int64) *big.Int {
	if k <= 0 {
		return big.NewInt(0)
	}
	r := big.NewInt(k)
	r.Mul(r, big.NewInt(k+1))
	r.Mul(r, big.NewInt(2*k+1))
	return r.Div(r, big.NewInt(6))
}

// pairDistanceTotal returns P(n) = sum over ordered distinct pairs (x,y)
// of |x-y|, equal to n(n-1)(n+1)/3.
func pairDistanceTotal(n int64) *big.Int {
	r := big.NewInt(n)
	r.Mul(r, big.NewInt(n-1))
	r.Mul(r, big.NewInt(n+1))
	return r.Div(r, big.NewInt(3))
}

// sameSetTotal returns 2 * sum over ordered distinct pairs (x,y) of
// (x-y)^2, equal to n^2(n^2-1)/3. This is the contribution to P(n)^2 made
// by the two orderings of a single reused pair (x,y).
func sameSetTotal(n int64) *big.Int {
	n2 := n * n
	r := big.NewInt(n2)
	r.Mul(r, big.NewInt(n2-1))
	return r.Div(r, big.NewInt(3))
}

// sumOfSquaredDistanceTotal returns sum over ordered distinct pairs (x,y)
// of (x-y)^2, equal to sameSetTotal(n)/2 = n^2(n^2-1)/6.
func sumOfSquaredDistanceTotal(n int64) *big.Int {
	return new(big.Int).Div(sameSetTotal(n), big.NewInt(2))
}

// sharedVertexTotal returns R(n) = sum over ordered distinct triples
// (x,y,z) of |x-y|*|x-z|, the total over every triple sharing its first
// coordinate x as the common vertex.
//
// For a fixed x, A(x) = sum_{y != x} |x-y| and B(x) = sum_{y != x}
// (x-y)^2; A(x)^2 counts every ordered pair (y,z) with y,z != x
// (including y = z), so A(x)^2 - B(x) removes the y = z terms and leaves
// exactly the y != z contributions. Summing over x gives R(n) in O(n).
func sharedVertexTotal(n int64) *big.Int {
	total := big.NewInt(0)
	for x := int64(0); x < n; x++ {
		left, right := x, n-1-x

		a := big.NewInt(left * (left + 1) / 2)
		a.Add(a, big.NewInt(right*(right+1)/2))

		b := sumOfSquares(left)
		b.Add(b, sumOfSquares(right))

		aSq := new(big.Int).Mul(a, a)
		aSq.Sub(aSq, b)
		total.Add(total, aSq)
	}
	return total
}

// disjointPairTotal returns Q(n) = sum over ordered 4-tuples of distinct
// values (x,y,z,w) of |x-y|*|z-w|, derived from P(n)^2 by subtracting the
// reused-pair contribution (sameSetTotal) and the four ways a 4-tuple can
// share exactly one coordinate (4*R(n)) — see DESIGN.md for the
// inclusion-exclusion derivation and its brute-force cross-check.
func disjointPairTotal(n int64) *big.Int {
	p := pairDistanceTotal(n)
	pSq := new(big.Int).Mul(p, p)
	pSq.Sub(pSq, sameSetTotal(n))
	r4 := new(big.Int).Mul(big.NewInt(4), sharedVertexTotal(n))
	pSq.Sub(pSq, r4)
	return pSq
}

func fallingFactorial(n int64, k int) *big.Int {
	r := big.NewInt(1)
	for i := int64(0); i < int64(k); i++ {
		r.Mul(r, big.NewInt(n-i))
	}
	return r
}
