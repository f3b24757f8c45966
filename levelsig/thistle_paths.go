package levelsig

import (
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/treetop"
)

// AntennaHasNoThistle reports whether none of path's internal vertices is
// a thistle — a necessary condition for a maximum arrangement on an
// antenna.
func AntennaHasNoThistle(g *core.Graph, perVertex []int, path treetop.BranchlessPath) bool {
	for _, u := range path.Internal() {
		if IsThistle(perVertex[u], g.Degree(u)) {
			return false
		}
	}
	return true
}

// BridgeAtMostOneThistle reports whether at most one of path's internal
// vertices is a thistle — the weaker necessary condition that applies to
// bridges rather than antennas.
func BridgeAtMostOneThistle(g *core.Graph, perVertex []int, path treetop.BranchlessPath) bool {
	count := 0
	for _, u := range path.Internal() {
		if IsThistle(perVertex[u], g.Degree(u)) {
			count++
			if count > 1 {
				return false
			}
		}
	}
	return true
}
