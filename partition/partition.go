package partition

import (
	"context"

	"github.com/katalvlaran/manhattan/grid"
)

// NearestSeed folds cell's distance to every seed, in seed order, into a
// Nearest. seeds must be non-empty.
//
// The first seed opens the fold; each later seed either replaces the
// winner (strictly closer), marks a tie (equally close) or is ignored.
// A cell therefore belongs to seed S iff S is the unique strict minimum.
// Complexity: O(n).
func NearestSeed(cell grid.Point, seeds []grid.Point) Nearest {
	n := Nearest{Seed: 0, Distance: grid.Distance(cell, seeds[0])}
	for id := 1; id < len(seeds); id++ {
		n = n.observe(id, grid.Distance(cell, seeds[id]))
	}
	return n
}

// Partition assigns every cell of b to its uniquely closest seed.
// Tied cells are dropped. Seeds that win no cell have no region.
//
// Steps:
//  1. Split the columns of b into opts.Workers strips.
//  2. Each strip folds NearestSeed per cell into its own arena.
//  3. Arenas are concatenated per seed in strip order, so every region
//     lists its cells column-major regardless of Workers.
//
// Returns grid.ErrEmptySeeds if seeds is empty, or the context error if
// opts.Ctx is canceled mid-sweep.
// Complexity: O(W·H·n) time, O(W·H) memory.
func Partition(seeds []grid.Point, b grid.Bounds, opts Options) (*RegionMap, error) {
	opts.normalize()
	if len(seeds) == 0 {
		return nil, grid.ErrEmptySeeds
	}

	strips := grid.Strips(b, opts.Workers)
	arenas := make([][][]grid.Point, len(strips))
	err := grid.Sweep(opts.Ctx, strips, func(ctx context.Context, i int, s grid.Strip) error {
		local := make([][]grid.Point, len(seeds))
		for x := s.X0; x < s.X1; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for y := 0; y <= b.YMax; y++ {
				cell := grid.Point{X: x, Y: y}
				if id, ok := NearestSeed(cell, seeds).Unique(); ok {
					local[id] = append(local[id], cell)
				}
			}
		}
		arenas[i] = local
		return nil
	})
	if err != nil {
		return nil, err
	}

	rm := newRegionMap(len(seeds))
	for _, local := range arenas {
		for id, cells := range local {
			if len(cells) > 0 {
				rm.regions[id] = append(rm.regions[id], cells...)
			}
		}
	}

	return rm, nil
}

// FilterBounded returns a new map holding only the regions of rm that
// have no cell on b's outer ring. Regions are kept or dropped whole.
// Filtering a filtered map removes nothing further.
// Complexity: O(W·H).
func FilterBounded(rm *RegionMap, b grid.Bounds) *RegionMap {
	out := newRegionMap(rm.Seeds())
	for id, cells := range rm.regions {
		if cells == nil || touchesEdge(cells, b) {
			continue
		}
		out.regions[id] = cells
	}
	return out
}

// Unbounded lists, ascending, the seed ids whose region touches b's outer
// ring, i.e. the ids FilterBounded would drop.
func Unbounded(rm *RegionMap, b grid.Bounds) []int {
	var ids []int
	for id, cells := range rm.regions {
		if cells != nil && touchesEdge(cells, b) {
			ids = append(ids, id)
		}
	}
	return ids
}

// LargestBounded runs the whole pipeline on seeds (bounds, partition,
// filter) and returns the biggest finite region.
// Returns ErrNoBoundedRegion if every region is unbounded.
func LargestBounded(seeds []grid.Point, opts Options) (id, size int, err error) {
	b, err := grid.BoundsOf(seeds)
	if err != nil {
		return -1, 0, err
	}
	rm, err := Partition(seeds, b, opts)
	if err != nil {
		return -1, 0, err
	}
	id, size, ok := FilterBounded(rm, b).Largest()
	if !ok {
		return -1, 0, ErrNoBoundedRegion
	}

	return id, size, nil
}

// touchesEdge reports whether any cell lies on b's outer ring.
func touchesEdge(cells []grid.Point, b grid.Bounds) bool {
	for _, c := range cells {
		if b.OnEdge(c) {
			return true
		}
	}
	return false
}
