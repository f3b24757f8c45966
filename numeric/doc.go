// Package numeric computes exact expectation and variance of the
// dependency-distance sum D over random linear arrangements.
//
// Every quantity is returned as a *big.Rat rather than a float64: D's
// expectation and variance under the uniform distribution over
// arrangements are themselves rational numbers (finite sums of integer
// ratios), and math/big.Rat gives exact arithmetic without a GMP
// binding. ExpectedD/VarianceD's formulas are derived here from first
// principles (see the derivation note in DESIGN.md) and cross-checked
// against brute-force enumeration over all n! arrangements for small n.
package numeric
