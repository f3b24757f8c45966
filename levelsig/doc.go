// Package levelsig implements level signatures: per-vertex and
// per-position level values, their mirror relation, and the necessary
// (not sufficient) conditions a maximum arrangement's level signature
// must satisfy — used by dmax purely for pruning.
package levelsig
