package partition

import (
	"context"
	"slices"

	"github.com/katalvlaran/manhattan/grid"
)

// Nearest is the outcome of measuring one cell against every seed:
// either a unique winner (Seed, Distance) or a tie at Distance.
type Nearest struct {
	Seed     int  // winning seed id; meaningless when Tied
	Distance int  // smallest distance observed
	Tied     bool // two or more seeds share Distance
}

// Unique returns the winning seed id, or ok=false on a tie.
func (n Nearest) Unique() (seed int, ok bool) {
	if n.Tied {
		return -1, false
	}
	return n.Seed, true
}

// observe folds seed id at distance d into n.
// A strictly closer seed replaces the winner and clears any tie.
func (n Nearest) observe(id, d int) Nearest {
	switch {
	case d < n.Distance:
		return Nearest{Seed: id, Distance: d}
	case d == n.Distance:
		n.Tied = true
	}
	return n
}

// RegionMap holds, per seed id, the cells that seed uniquely owns.
// A seed without a region has a nil slot. Slots are filled by Partition
// and only ever dropped whole by FilterBounded.
type RegionMap struct {
	regions [][]grid.Point
}

func newRegionMap(seeds int) *RegionMap {
	return &RegionMap{regions: make([][]grid.Point, seeds)}
}

// Seeds is the size of the seed set the map was built for.
func (rm *RegionMap) Seeds() int {
	return len(rm.regions)
}

// Len is the number of seeds that own a region.
func (rm *RegionMap) Len() int {
	n := 0
	for _, cells := range rm.regions {
		if cells != nil {
			n++
		}
	}
	return n
}

// Region returns a copy of the cells owned by id, in column-major order.
// ok is false when id owns nothing or is out of range.
func (rm *RegionMap) Region(id int) (cells []grid.Point, ok bool) {
	if id < 0 || id >= len(rm.regions) || rm.regions[id] == nil {
		return nil, false
	}
	return slices.Clone(rm.regions[id]), true
}

// Size is the cell count of id's region, 0 when absent.
func (rm *RegionMap) Size(id int) int {
	if id < 0 || id >= len(rm.regions) {
		return 0
	}
	return len(rm.regions[id])
}

// IDs lists the seed ids that own a region, ascending.
func (rm *RegionMap) IDs() []int {
	ids := make([]int, 0, len(rm.regions))
	for id, cells := range rm.regions {
		if cells != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Largest returns the region with the most cells; the lowest id wins
// equal sizes. ok is false when the map is empty.
func (rm *RegionMap) Largest() (id, size int, ok bool) {
	id = -1
	for i, cells := range rm.regions {
		if cells != nil && len(cells) > size {
			id, size = i, len(cells)
		}
	}
	return id, size, id >= 0
}

// Owners flattens the map onto b in row-major order (see grid.Bounds.Index):
// each entry is the owning seed id, or -1 for a cell no region holds.
func (rm *RegionMap) Owners(b grid.Bounds) []int {
	owners := make([]int, b.Cells())
	for i := range owners {
		owners[i] = -1
	}
	for id, cells := range rm.regions {
		for _, c := range cells {
			if b.InBounds(c) {
				owners[b.Index(c)] = id
			}
		}
	}
	return owners
}

// Options configures Partition and LargestBounded.
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
