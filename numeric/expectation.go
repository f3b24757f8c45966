package numeric

import (
	"math/big"

	"github.com/arjun-meyer/lal/core"
)

// ExpectedD returns the exact expectation of D (the sum, over g's edges,
// of the absolute difference between the two endpoints' positions) under
// the uniform distribution over all n! linear arrangements of g's n
// vertices.
//
// Each edge's expected length is (n+1)/3 regardless of which two vertices
// it joins — the average absolute difference between two distinct values
// drawn without replacement from {0,...,n-1} — so E[D] = m*(n+1)/3 where m
// is g's edge count.
func ExpectedD(g *core.Graph) (*big.Rat, error) {
	n := int64(g.N())
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	m := int64(g.M())
	el := big.NewRat(n+1, 3)
	return el.Mul(el, big.NewRat(m, 1)), nil
}
