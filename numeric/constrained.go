package numeric

import (
	"math/big"

	"github.com/arjun-meyer/lal/arrangement"
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/generate"
)

// No closed form for D's expectation/variance under projective or planar
// arrangements is derived here — unlike the unconstrained case, the
// constraint couples every vertex's position to its subtree, so the
// per-edge-length terms no longer reduce to a handful of n-only building
// blocks. Both statistics are instead computed exactly over the full
// enumerated set of valid arrangements (generate.AllProjectiveArrangements
// / generate.AllPlanarArrangements already filters to exactly that
// set) — exact because every member of the set is enumerated once, not
// sampled, mirroring the enumerate-then-filter idiom the generate package
// itself is built on.

// ExpectedDOverProjective returns D's exact expectation over the uniform
// distribution on rt's projective arrangements.
func ExpectedDOverProjective(rt *core.RootedTree) (*big.Rat, error) {
	arrs, err := generate.AllProjectiveArrangements(rt)
	if err != nil {
		return nil, err
	}
	return meanD(rt.ToFreeTree().Graph, arrs)
}

// VarianceDOverProjective returns D's exact variance over the uniform
// distribution on rt's projective arrangements.
func VarianceDOverProjective(rt *core.RootedTree) (*big.Rat, error) {
	arrs, err := generate.AllProjectiveArrangements(rt)
	if err != nil {
		return nil, err
	}
	return varD(rt.ToFreeTree().Graph, arrs)
}

// ExpectedDOverPlanar returns D's exact expectation over the uniform
// distribution on g's planar arrangements.
func ExpectedDOverPlanar(g *core.Graph) (*big.Rat, error) {
	arrs, err := generate.AllPlanarArrangements(g)
	if err != nil {
		return nil, err
	}
	return meanD(g, arrs)
}

// VarianceDOverPlanar returns D's exact variance over the uniform
// distribution on g's planar arrangements.
func VarianceDOverPlanar(g *core.Graph) (*big.Rat, error) {
	arrs, err := generate.AllPlanarArrangements(g)
	if err != nil {
		return nil, err
	}
	return varD(g, arrs)
}

func meanD(g *core.Graph, arrs []*core.LinearArrangement) (*big.Rat, error) {
	if len(arrs) == 0 {
		return nil, ErrTooFewVertices
	}
	sum := big.NewInt(0)
	for _, arr := range arrs {
		sum.Add(sum, big.NewInt(arrangement.D(g, arr)))
	}
	return new(big.Rat).SetFrac(sum, big.NewInt(int64(len(arrs)))), nil
}

func varD(g *core.Graph, arrs []*core.LinearArrangement) (*big.Rat, error) {
	if len(arrs) == 0 {
		return nil, ErrTooFewVertices
	}
	mean, err := meanD(g, arrs)
	if err != nil {
		return nil, err
	}

	sumSq := new(big.Rat)
	for _, arr := range arrs {
		d := big.NewRat(arrangement.D(g, arr), 1)
		sumSq.Add(sumSq, new(big.Rat).Mul(d, d))
	}
	count := new(big.Rat).SetInt(big.NewInt(int64(len(arrs))))
	meanSq := sumSq.Quo(sumSq, count)

	return new(big.Rat).Sub(meanSq, new(big.Rat).Mul(mean, mean)), nil
}
