// Package traverse implements a single breadth/depth-first traversal
// engine over core.Graph, built as a hook-carrying struct rather than the
// callback-per-call style some traversal libraries use (callback-heavy
// traversal is best expressed as a builder of a
// traversal with fields for each hook; any hook absent becomes a
// no-op").
//
// Each node is processed at most once per run; the neighbor callback
// fires for every incident edge subject to the reverse-edges and
// already-visited filters; order follows each vertex's neighbor-list
// order, so the traversal is fully deterministic.
//
//	tr := traverse.NewBFS(g).
//		OnProcessCurrent(func(u int) { fmt.Println(u) })
//	tr.StartAt(0)
package traverse
