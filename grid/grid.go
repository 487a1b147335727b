package grid

// Distance returns the Manhattan distance |a.X-b.X| + |a.Y-b.Y|.
// Complexity: O(1).
func Distance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// BoundsOf derives the sampling box from seeds: XMax and YMax are the
// largest X and Y found; the minimum corner stays at (0,0).
// Returns ErrEmptySeeds if seeds is empty.
// Complexity: O(n).
func BoundsOf(seeds []Point) (Bounds, error) {
	if len(seeds) == 0 {
		return Bounds{}, ErrEmptySeeds
	}
	b := Bounds{XMax: seeds[0].X, YMax: seeds[0].Y}
	for _, s := range seeds[1:] {
		if s.X > b.XMax {
			b.XMax = s.X
		}
		if s.Y > b.YMax {
			b.YMax = s.Y
		}
	}

	return b, nil
}

// Width is the number of sampled columns, XMax+1 (0 if XMax is negative).
func (b Bounds) Width() int {
	if b.XMax < 0 {
		return 0
	}
	return b.XMax + 1
}

// Height is the number of sampled rows, YMax+1 (0 if YMax is negative).
func (b Bounds) Height() int {
	if b.YMax < 0 {
		return 0
	}
	return b.YMax + 1
}

// Cells is the total number of sampled cells.
func (b Bounds) Cells() int {
	return b.Width() * b.Height()
}

// InBounds reports whether p lies within [0,XMax] × [0,YMax].
// Complexity: O(1).
func (b Bounds) InBounds(p Point) bool {
	return p.X >= 0 && p.X <= b.XMax && p.Y >= 0 && p.Y <= b.YMax
}

// OnEdge reports whether p lies on the outer ring of the box.
// A region owning such a cell extends past the sampled area.
// Complexity: O(1).
func (b Bounds) OnEdge(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == b.XMax || p.Y == b.YMax
}

// Index maps p to a row-major index: Y*Width + X.
// Complexity: O(1).
func (b Bounds) Index(p Point) int {
	return p.Y*b.Width() + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (b Bounds) Coordinate(idx int) Point {
	w := b.Width()
	return Point{X: idx % w, Y: idx / w}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
