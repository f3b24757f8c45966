package isomorphism

// Algorithm selects the encoding used to decide rooted-tree isomorphism.
type Algorithm int

const (
	// String builds a "10"-alphabet identifier string per vertex,
	// proportional in length to the size of its subtree (Aho, Hopcroft
	// and Ullman, 1974).
	String Algorithm = iota
	// TupleSmall canonicalizes subtree shapes to small integers through
	// a shared lookup table, trading a map lookup per vertex for much
	// smaller identifiers; best suited to small trees.
	TupleSmall
	// TupleLarge builds a nested, directly-comparable shape value with
	// no canonicalization table, avoiding the map-growth cost of
	// TupleSmall on large trees at the expense of deeper comparisons.
	TupleLarge
)
