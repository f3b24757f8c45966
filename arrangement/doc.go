// Package arrangement implements the predicates and cost functions for
// permutation/arrangement validity, edge-length sum D, crossing
// number C, and the planar/projective/bipartite classifications built on
// top of them.
package arrangement
