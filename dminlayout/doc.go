// Package dminlayout implements the Gildea/Hochberg/Alemany interval
// layout engine for minimum edge-length sum D: given a rooted
// tree, it produces an arrangement that is optimal among all projective
// arrangements (those where every subtree occupies a contiguous interval
// of positions and the root is never "covered" by a descendant edge). The
// same recursion, applied to a free tree rooted at one of its centroids,
// produces an optimal planar arrangement.
//
// The algorithm recurses on intervals: a subtree rooted at r is assigned
// a contiguous position range [ini,fin]; its children's sub-intervals are
// handed out in decreasing order of subtree size, alternating between the
// two ends of the range (starting with the end away from r's parent) and
// moving inward, so the largest subtrees end up farthest from r, and r
// takes the single position left between the innermost children.
package dminlayout
