package numeric

import "errors"

// ErrTooFewVertices indicates a graph with fewer than 2 vertices was
// passed to a statistic that needs at least one edge to be meaningful.
var ErrTooFewVertices = errors.New("numeric: need at least 2 vertices")
