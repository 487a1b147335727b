// Package threshold defines options and sentinel errors for the
// threshold subpackage of github.com/katalvlaran/manhattan.
package threshold

import (
	"context"
	"errors"
)

// DefaultLimit is the customary summed-distance limit.
const DefaultLimit = 10000

// ErrThreshold indicates a non-positive limit.
var ErrThreshold = errors.New("threshold: limit must be positive")

// Options configures GrowRegion and Region.
//   - Workers: number of column strips evaluated concurrently (default 1).
//   - Ctx:     cancellation / deadline (default context.Background()).
type Options struct {
	Workers int
	Ctx     context.Context
}

// DefaultOptions returns sequential, non-cancelable options.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Ctx:     context.Background(),
	}
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
}
