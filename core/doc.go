// Package core defines the fundamental graph, tree, and linear-arrangement
// types shared by every other lal package: Graph (directed/undirected),
// FreeTree, RootedTree, LinearArrangement, and HeadVector.
//
// Unlike a general-purpose graph store, core is deliberately single-threaded
// (see the library's concurrency model): a Graph's vertex count is fixed at
// construction and every algorithm package (traverse, treetop, dmax, …)
// assumes exclusive, non-concurrent access to the instances it is handed.
// Callers owning a Graph across goroutines must serialize their own access.
//
//	g := core.NewUndirectedGraph(5)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	fmt.Println(g.Degree(1)) // 2
package core
