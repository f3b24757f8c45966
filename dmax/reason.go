package dmax

// ReasonDiscard enumerates why a tentative vertex placement was rejected
// during branch-and-bound search. ReasonNone means the placement stands.
// Exposed so callers inspecting search diagnostics (and tests asserting
// which filter fired) have a name for every rejection path, matching the
// node-discarding logic of this solver's branch-and-bound dispatcher.
type ReasonDiscard int

const (
	ReasonNone ReasonDiscard = iota
	ReasonWillProduceBipartiteArrangement
	ReasonNodeOfAntennaAsThistle
	ReasonThistleInBridgeIsNotTheLowest
	ReasonHubDisallowsPlacementOfAntennas
	ReasonPlacementIsInConflictWithLevelPrediction
	ReasonLevelSignatureWillNotBeNonincreasing
	ReasonMissingEntirePath
	ReasonMissingDegree1
	ReasonMissingDegree2LP2
	ReasonMissingDegree2LM2
	ReasonAdjacentVerticesWithEqualLevelValue
	ReasonNodeDisallowsPlacementOfNeighbors
	ReasonPlacementFailsLevelPropagation
	ReasonLargestCutBelowMinimum
	ReasonNodesOfEqualLevelDisobeyLexicographicOrder
	ReasonNodeLeavesDisobeyLexicographicOrder
	ReasonRootsOfIsomorphicSubtreesDisobeyLexicographicOrder
	reasonDiscardCount
)

var reasonDiscardNames = [...]string{
	"none",
	"will_produce_bipartite_arrangement",
	"node_of_antenna_as_thistle",
	"thistle_in_bridge_is_not_the_lowest",
	"hub_disallows_placement_of_antennas",
	"placement_is_in_conflict_with_level_prediction",
	"level_signature_will_not_be_nonincreasing",
	"missing_entire_path",
	"missing_degree1",
	"missing_degree2_lp2",
	"missing_degree2_lm2",
	"adjacent_vertices_with_equal_level_value",
	"node_disallows_placement_of_neighbors",
	"placement_fails_level_propagation",
	"largest_cut_below_minimum",
	"nodes_of_equal_level_disobey_lexicographic_order",
	"node_leaves_disobey_lexicographic_order",
	"roots_of_isomorphic_subtrees_disobey_lexicographic_order",
}

// String renders the symbolic name, or "reason_discard(unknown)" for a value
// outside the known range.
func (r ReasonDiscard) String() string {
	if r < 0 || int(r) >= len(reasonDiscardNames) {
		return "reason_discard(unknown)"
	}
	return reasonDiscardNames[r]
}
