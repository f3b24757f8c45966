package generate

import (
	"math/rand"

	"github.com/arjun-meyer/lal/arrangement"
	"github.com/arjun-meyer/lal/core"
)

// AllArrangements enumerates every one of the n! linear arrangements of n
// vertices, via Heap's algorithm (in-place swap generation, no recursion
// stack deeper than n) over the identity order.
func AllArrangements(n int) ([]*core.LinearArrangement, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n == 0 {
		return []*core.LinearArrangement{core.NewEmptyArrangement()}, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	var out []*core.LinearArrangement
	c := make([]int, n)
	out = append(out, arrangementFromOrder(order))

	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				order[0], order[i] = order[i], order[0]
			} else {
				order[c[i]], order[i] = order[i], order[c[i]]
			}
			out = append(out, arrangementFromOrder(order))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return out, nil
}

// AllProjectiveArrangements enumerates every arrangement of rt's vertices
// satisfying arrangement.IsProjective, by brute-force filtering
// AllArrangements — reusing the library's own predicate rather than
// re-deriving the contiguous-subtree construction rule it already encodes.
func AllProjectiveArrangements(rt *core.RootedTree) ([]*core.LinearArrangement, error) {
	all, err := AllArrangements(rt.N())
	if err != nil {
		return nil, err
	}
	var out []*core.LinearArrangement
	for _, arr := range all {
		if arrangement.IsProjective(rt, arr) {
			out = append(out, arr)
		}
	}
	return out, nil
}

// AllPlanarArrangements enumerates every arrangement of g's vertices
// satisfying arrangement.IsPlanar, by the same brute-force filtering as
// AllProjectiveArrangements.
func AllPlanarArrangements(g *core.Graph) ([]*core.LinearArrangement, error) {
	all, err := AllArrangements(g.N())
	if err != nil {
		return nil, err
	}
	var out []*core.LinearArrangement
	for _, arr := range all {
		if arrangement.IsPlanar(g, arr) {
			out = append(out, arr)
		}
	}
	return out, nil
}

// RandProjectiveArrangement draws a uniformly random projective arrangement
// of rt directly, by construction rather than rejection sampling: at each
// subtree, the children's blocks are shuffled into a random order and the
// subtree's own root vertex is inserted at a uniformly random gap among
// them — every projective arrangement arises from exactly one such choice
// sequence, so sampling the choices uniformly samples arrangements
// uniformly.
func RandProjectiveArrangement(rt *core.RootedTree, rng *rand.Rand) (*core.LinearArrangement, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	dt := buildChildren(rt)
	order := randomProjectiveOrder(rt.Root(), dt, rng)
	return arrangementFromOrder(order), nil
}

// RandBipartiteArrangement draws a uniformly random arrangement satisfying
// arrangement.IsBipartite under the 2-coloring c: shuffle each color class
// independently and, by a fair coin, place one class as the prefix and
// the other as the suffix — every such arrangement is reachable and no rejection is needed, since
// IsBipartite only asks for at most one color change in the whole
// sequence.
func RandBipartiteArrangement(g *core.Graph, c []int, rng *rand.Rand) (*core.LinearArrangement, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	var class0, class1 []int
	for v, col := range c {
		if col == 0 {
			class0 = append(class0, v)
		} else {
			class1 = append(class1, v)
		}
	}
	shuffle(class0, rng)
	shuffle(class1, rng)
	first, second := class0, class1
	if rng.Intn(2) == 1 {
		first, second = class1, class0
	}
	order := append(append([]int(nil), first...), second...)
	return arrangementFromOrder(order), nil
}

func shuffle(s []int, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// buildChildren returns, per vertex, its tree children relative to rt's
// root — the same iterative-DFS idiom used throughout the pack.
func buildChildren(rt *core.RootedTree) [][]int {
	n := rt.N()
	children := make([][]int, n)
	visited := make([]bool, n)
	root := rt.Root()
	visited[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range rt.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			children[u] = append(children[u], v)
			stack = append(stack, v)
		}
	}
	return children
}

// randomProjectiveOrder recursively builds a random projective vertex
// order for the subtree rooted at r.
func randomProjectiveOrder(r int, children [][]int, rng *rand.Rand) []int {
	kids := append([]int(nil), children[r]...)
	shuffle(kids, rng)

	blocks := make([][]int, len(kids))
	for i, c := range kids {
		blocks[i] = randomProjectiveOrder(c, children, rng)
	}

	gap := rng.Intn(len(kids) + 1)
	var order []int
	for i, b := range blocks {
		if i == gap {
			order = append(order, r)
		}
		order = append(order, b...)
	}
	if gap == len(kids) {
		order = append(order, r)
	}
	return order
}

// arrangementFromOrder builds a LinearArrangement from a position->node
// order slice.
func arrangementFromOrder(order []int) *core.LinearArrangement {
	pos := make([]int, len(order))
	for p, node := range order {
		pos[node] = p
	}
	return core.NewArrangement(pos)
}
