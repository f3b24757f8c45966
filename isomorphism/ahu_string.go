package isomorphism

import (
	"sort"
	"strings"

	"github.com/arjun-meyer/lal/core"
)

// assignNameString computes the AHU identifier of the subtree rooted at u,
// whose parent (in the implied rooting) is p. Use p == -1 for the root.
func assignNameString(t *core.FreeTree, p, u int) string {
	var names []string
	for _, v := range t.Neighbors(u) {
		if v == p {
			continue
		}
		names = append(names, assignNameString(t, u, v))
	}
	if len(names) == 0 {
		return "10"
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('1')
	for _, s := range names {
		b.WriteString(s)
	}
	b.WriteByte('0')
	return b.String()
}

// areRootedTreesIsomorphicString implements the AHU string encoding: two
// rooted trees are isomorphic iff the identifier strings of their roots
// match exactly.
func areRootedTreesIsomorphicString(t1 *core.FreeTree, r1 int, t2 *core.FreeTree, r2 int) bool {
	return assignNameString(t1, -1, r1) == assignNameString(t2, -1, r2)
}
