// Package registry stores a deduplicated set of optimal arrangements.
// Arrangements are grouped into classes under *level
// isomorphism*: two arrangements belong to the same class iff their
// per-position level signatures are equal, or one is the mirror of the
// other. Each class retains one representative arrangement, its
// signature (and the signature's mirror, precomputed for fast lookup),
// and a multiplicity counter.
package registry
