// Package chunking groups a rooted tree's vertices, laid out by a linear
// arrangement, into contiguous runs — chunks under Anderson et al.'s
// definition, and the dependency flux that crosses each cut position
// between consecutive arrangement slots.
//
// Both algorithms are read-only passes over an already-built
// core.RootedTree/core.FreeTree and core.LinearArrangement: neither mutates
// its input, matching the deterministic, side-effect-free shape of the
// library's other greedy combinatorial routines.
package chunking
