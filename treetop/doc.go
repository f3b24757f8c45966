// Package treetop implements the tree-topology primitives every other
// lal algorithm package builds on: centre extraction, subtree-size
// computation, branchless-path decomposition, and tree-type
// classification.
package treetop
