package core

// ComponentsView holds, for each connected component of a graph, a
// subgraph reindexed into its own small index space plus the translation
// tables between global and local indices (a connected-components view).
type ComponentsView struct {
	// Subgraphs[i] is component i, reindexed 0..size(i)-1.
	Subgraphs []*Graph
	// GlobalToLocal[u] is u's index within its own component's subgraph.
	GlobalToLocal []int
	// LocalToGlobal[i][j] maps component i's local index j back to a
	// global vertex id.
	LocalToGlobal [][]int
	// ComponentOf[u] is the index of u's component.
	ComponentOf []int
}

// ConnectedComponents decomposes g into its connected components,
// treating edges as undirected regardless of g.IsDirected (reachability
// for component purposes ignores direction).
func ConnectedComponents(g *Graph) *ComponentsView {
	n := g.N()
	compOf := make([]int, n)
	for i := range compOf {
		compOf[i] = -1
	}
	var members [][]int
	for s := 0; s < n; s++ {
		if compOf[s] != -1 {
			continue
		}
		id := len(members)
		var comp []int
		stack := []int{s}
		compOf[s] = id
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range undirectedNeighbors(g, u) {
				if compOf[v] == -1 {
					compOf[v] = id
					stack = append(stack, v)
				}
			}
		}
		members = append(members, comp)
	}

	view := &ComponentsView{
		ComponentOf:   compOf,
		GlobalToLocal: make([]int, n),
		LocalToGlobal: make([][]int, len(members)),
		Subgraphs:     make([]*Graph, len(members)),
	}
	for id, comp := range members {
		local := make(map[int]int, len(comp))
		for li, gi := range comp {
			local[gi] = li
			view.GlobalToLocal[gi] = li
		}
		view.LocalToGlobal[id] = comp
		sub := newGraph(len(comp), g.IsDirected())
		for li, gu := range comp {
			for _, gv := range g.OutNeighbors(gu) {
				if lv, ok := local[gv]; ok && !sub.HasEdge(li, lv) && li != lv {
					sub.AddEdge(li, lv)
				}
			}
		}
		view.Subgraphs[id] = sub
	}
	return view
}

func undirectedNeighbors(g *Graph, u int) []int {
	if !g.IsDirected() {
		return g.Neighbors(u)
	}
	out := append([]int(nil), g.OutNeighbors(u)...)
	out = append(out, g.InNeighbors(u)...)
	return out
}
