package threshold

import (
	"context"

	"github.com/katalvlaran/manhattan/grid"
)

// SumDistance returns Σ grid.Distance(cell, seed) over all seeds.
// Complexity: O(n).
func SumDistance(cell grid.Point, seeds []grid.Point) int {
	sum := 0
	for _, s := range seeds {
		sum += grid.Distance(cell, s)
	}
	return sum
}

// GrowRegion counts the cells of b whose SumDistance is strictly below
// limit. Each strip counts into its own slot; slots are summed once the
// sweep finishes.
//
// Returns grid.ErrEmptySeeds, ErrThreshold for limit <= 0, or the context
// error if opts.Ctx is canceled.
// Complexity: O(W·H·n) time, O(workers) memory.
func GrowRegion(seeds []grid.Point, b grid.Bounds, limit int, opts Options) (int, error) {
	if err := validate(seeds, limit); err != nil {
		return 0, err
	}
	opts.normalize()

	strips := grid.Strips(b, opts.Workers)
	counts := make([]int, len(strips))
	err := grid.Sweep(opts.Ctx, strips, func(ctx context.Context, i int, s grid.Strip) error {
		return scan(ctx, seeds, b, s, limit, func(grid.Point) { counts[i]++ })
	})
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Region returns the cells GrowRegion counts, column-major.
// Errors are those of GrowRegion.
// Complexity: O(W·H·n) time, O(result) memory.
func Region(seeds []grid.Point, b grid.Bounds, limit int, opts Options) ([]grid.Point, error) {
	if err := validate(seeds, limit); err != nil {
		return nil, err
	}
	opts.normalize()

	strips := grid.Strips(b, opts.Workers)
	parts := make([][]grid.Point, len(strips))
	err := grid.Sweep(opts.Ctx, strips, func(ctx context.Context, i int, s grid.Strip) error {
		return scan(ctx, seeds, b, s, limit, func(p grid.Point) { parts[i] = append(parts[i], p) })
	})
	if err != nil {
		return nil, err
	}

	var cells []grid.Point
	for _, part := range parts {
		cells = append(cells, part...)
	}
	return cells, nil
}

// scan calls emit for each qualifying cell of strip s, checking ctx once
// per column.
func scan(ctx context.Context, seeds []grid.Point, b grid.Bounds, s grid.Strip, limit int, emit func(grid.Point)) error {
	for x := s.X0; x < s.X1; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for y := 0; y <= b.YMax; y++ {
			cell := grid.Point{X: x, Y: y}
			if SumDistance(cell, seeds) < limit {
				emit(cell)
			}
		}
	}
	return nil
}

func validate(seeds []grid.Point, limit int) error {
	if len(seeds) == 0 {
		return grid.ErrEmptySeeds
	}
	if limit <= 0 {
		return ErrThreshold
	}
	return nil
}
