package generate

import "errors"

// Sentinel errors for generate's exhaustive and randomized constructors.
var (
	// ErrInvalidSize indicates a requested vertex count is out of the
	// domain a generator can construct (n < 0, or n < 1 where a tree
	// requires at least one vertex).
	ErrInvalidSize = errors.New("generate: invalid vertex count")

	// ErrNeedRandSource indicates a randomized constructor was called with
	// a nil *rand.Rand.
	ErrNeedRandSource = errors.New("generate: rng is required")
)
