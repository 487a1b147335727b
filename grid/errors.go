package grid

import "errors"

var (
	// ErrEmptySeeds indicates the seed set has no points, so no bounds exist.
	ErrEmptySeeds = errors.New("grid: seed set must contain at least one point")
)
