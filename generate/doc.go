// Package generate implements tree and arrangement generators:
// exhaustive enumeration of labeled/unlabeled free and rooted trees and
// of planar/projective arrangements, plus random generators for labeled
// free and rooted trees and for projective and bipartite arrangements
// (there is no random unlabeled tree or random planar arrangement).
//
// Every exhaustive generator here is inherently exponential in n (n^(n-2)
// labeled trees per Cayley's formula, n! arrangements, and so on) — these
// are small-n combinatorial utilities and test fixtures, not components
// meant to scale.
package generate
