package partition

import "errors"

var (
	// ErrNoBoundedRegion indicates every region touched the grid's outer ring.
	ErrNoBoundedRegion = errors.New("partition: no bounded region")
)
