// Package grid defines core types for the grid subpackage of
// github.com/katalvlaran/manhattan.
package grid

import "strconv"

// Point is a cell or seed position on the integer plane.
type Point struct {
	X, Y int
}

// String renders p in the "x, y" input line format.
func (p Point) String() string {
	return strconv.Itoa(p.X) + ", " + strconv.Itoa(p.Y)
}

// Bounds is the inclusive sampling box [0,XMax] × [0,YMax].
// It is derived once per seed set and never mutated.
type Bounds struct {
	XMax, YMax int
}

// Strip is a half-open column range [X0, X1) of a Bounds.
type Strip struct {
	X0, X1 int
}

// Neighbors4 holds orthogonal neighbor offsets: N, E, S, W.
var Neighbors4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
