package threshold

import "github.com/katalvlaran/manhattan/grid"

// ConnectedRegion grows the 4-connected set of below-limit cells that
// contains the cell with the smallest SumDistance (first in row-major
// order on equal sums). The result is in BFS order; it is empty when no
// cell of b qualifies.
//
// Returns grid.ErrEmptySeeds or ErrThreshold on invalid input.
// Time:   O(W·H·n) to tabulate sums, O(W·H) for the BFS.
// Memory: O(W·H) for sums, visited flags and the queue.
func ConnectedRegion(seeds []grid.Point, b grid.Bounds, limit int) ([]grid.Point, error) {
	if err := validate(seeds, limit); err != nil {
		return nil, err
	}
	total := b.Cells()
	if total == 0 {
		return nil, nil
	}

	sums := make([]int, total)
	start := 0
	for i := range sums {
		sums[i] = SumDistance(b.Coordinate(i), seeds)
		if sums[i] < sums[start] {
			start = i
		}
	}
	if sums[start] >= limit {
		return nil, nil
	}

	// BFS from the minimum
	seen := make([]bool, total)
	queue := []int{start}
	seen[start] = true
	var region []grid.Point

	for qi := 0; qi < len(queue); qi++ {
		u := b.Coordinate(queue[qi])
		region = append(region, u)
		for _, d := range grid.Neighbors4 {
			v := grid.Point{X: u.X + d[0], Y: u.Y + d[1]}
			if !b.InBounds(v) {
				continue
			}
			vi := b.Index(v)
			if seen[vi] || sums[vi] >= limit {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return region, nil
}
