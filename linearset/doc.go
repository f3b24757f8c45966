// Package linearset implements a fixed-capacity indexed set offering
// O(1) insertion, removal, positional query, and indexed access over a
// bounded universe of small integers. It backs the branch-and-bound
// solver's border-vertex structure; the solver sorts a copy of the
// border values itself and does not reorder the set.
package linearset
