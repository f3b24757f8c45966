package chunking

import "github.com/arjun-meyer/lal/core"

// Anderson partitions rt's vertices into chunks under Anderson et al.'s
// definition, given the linear arrangement arr: every internal vertex
// starts a chunk that absorbs the maximal run of its own leaf children
// immediately to its left and right in the arrangement; any leaf child not
// reachable by that march becomes a singleton chunk of its own. The
// relabeling and chunk-building steps are collapsed into one left-to-right
// grouping pass since the two steps both do nothing but group consecutive
// equal chunk ids in arrangement order.
func Anderson(rt *core.RootedTree, arr *core.LinearArrangement) *Sequence {
	n := rt.N()

	if n == 1 {
		return &Sequence{
			chunks:      []Chunk{{Nodes: []int{0}, hasParent: false}},
			nodeToChunk: []int{0},
		}
	}

	dt := buildDirectedTree(rt)

	rawChunkOf := make([]int, n)
	for i := range rawChunkOf {
		rawChunkOf[i] = -1
	}
	headOfRaw := make(map[int]int)
	nextRaw := 0

	var assign func(r int)
	assign = func(r int) {
		id := nextRaw
		nextRaw++
		rawChunkOf[r] = id
		headOfRaw[id] = r

		pRoot := arr.Position(r)

		for p := pRoot - 1; p >= 0; p-- {
			u := arr.NodeAt(p)
			if !canBeAdded(dt, r, u) {
				break
			}
			rawChunkOf[u] = id
		}
		for p := pRoot + 1; p < n; p++ {
			u := arr.NodeAt(p)
			if !canBeAdded(dt, r, u) {
				break
			}
			rawChunkOf[u] = id
		}

		for _, v := range dt.children[r] {
			if rawChunkOf[v] == -1 && dt.outDegree(v) == 0 {
				leafID := nextRaw
				nextRaw++
				rawChunkOf[v] = leafID
				headOfRaw[leafID] = v
			}
		}

		for _, v := range dt.children[r] {
			if dt.outDegree(v) > 0 {
				assign(v)
			}
		}
	}
	assign(rt.Root())

	seq := &Sequence{nodeToChunk: make([]int, n)}
	p := 0
	for p < n {
		rawID := rawChunkOf[arr.NodeAt(p)]
		start := p
		for p < n && rawChunkOf[arr.NodeAt(p)] == rawID {
			p++
		}

		idx := len(seq.chunks)
		nodes := append([]int(nil), arr.Nodes()[start:p]...)
		for _, u := range nodes {
			seq.nodeToChunk[u] = idx
		}

		head := headOfRaw[rawID]
		c := Chunk{Nodes: nodes}
		if head != rt.Root() {
			c.parent = dt.parent[head]
			c.hasParent = true
		}
		seq.chunks = append(seq.chunks, c)
	}

	return seq
}

// canBeAdded reports whether leaf u (as laid out next to r in the
// arrangement) may join r's chunk: it must be a leaf of rt and an actual
// tree child of r, not merely adjacent in the arrangement.
func canBeAdded(dt *directedTree, r, u int) bool {
	return dt.outDegree(u) == 0 && dt.isChildOf(r, u)
}
