// Package treebank reads head-vector and edge-list treebank files and
// processes a collection of them in parallel: a treebank file holds one
// syntactic dependency tree per line (or per blank-line-separated block,
// for the edge-list variant); a collection's main file lists, one per
// line, a tab-separated (name, path) pair naming each member treebank.
//
// The package stores only raw integers and caller-supplied opaque
// strings — it has no notion of what a tree's vertices "mean"
// linguistically. Per-tree feature extraction is left to a
// caller-supplied function so the package itself stays feature-agnostic.
package treebank
