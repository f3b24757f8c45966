package isomorphism

import (
	"fmt"
	"sort"

	"github.com/arjun-meyer/lal/core"
)

// canonicalLabel assigns a compact integer to the subtree rooted at u
// (parent p, or -1 at the root), reusing table across both input trees so
// that structurally equal subtrees - in either tree - map to the same
// integer. This is the tuple_small encoding: cheap to compare, but every
// distinct shape costs a map entry.
func canonicalLabel(t *core.FreeTree, p, u int, table map[string]int, next *int) int {
	var childIDs []int
	for _, v := range t.Neighbors(u) {
		if v == p {
			continue
		}
		childIDs = append(childIDs, canonicalLabel(t, u, v, table, next))
	}
	sort.Ints(childIDs)

	key := fmt.Sprint(childIDs)
	if id, ok := table[key]; ok {
		return id
	}
	id := *next
	*next++
	table[key] = id
	return id
}

func areRootedTreesIsomorphicTupleSmall(t1 *core.FreeTree, r1 int, t2 *core.FreeTree, r2 int) bool {
	table := make(map[string]int)
	next := 0
	l1 := canonicalLabel(t1, -1, r1, table, &next)
	l2 := canonicalLabel(t2, -1, r2, table, &next)
	return l1 == l2
}

// shape is a directly-comparable, order-independent representation of a
// subtree's structure: tuple_large avoids canonicalizing to integers,
// instead comparing nested slices of shapes, which keeps memory flat on
// very large trees at the cost of deeper comparisons.
type shape []shape

func buildShape(t *core.FreeTree, p, u int) shape {
	var children []shape
	for _, v := range t.Neighbors(u) {
		if v == p {
			continue
		}
		children = append(children, buildShape(t, u, v))
	}
	sort.Slice(children, func(i, j int) bool { return shapeLess(children[i], children[j]) })
	return shape(children)
}

func shapeEqual(a, b shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !shapeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func shapeLess(a, b shape) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if !shapeEqual(a[i], b[i]) {
			return shapeLess(a[i], b[i])
		}
	}
	return false
}

func areRootedTreesIsomorphicTupleLarge(t1 *core.FreeTree, r1 int, t2 *core.FreeTree, r2 int) bool {
	return shapeEqual(buildShape(t1, -1, r1), buildShape(t2, -1, r2))
}
