// Package grid provides the integer plane primitives shared by the
// partitioning and threshold engines: points, Manhattan distance, the
// bounding box derived from a seed set, and a column-strip sweep that
// fans cell evaluation out across goroutines.
//
// What:
//
//   - Point is an immutable (X, Y) pair of signed integers.
//   - Distance is the Manhattan metric |Δx| + |Δy|.
//   - Bounds is the inclusive box [0,XMax] × [0,YMax] derived from a seed set.
//   - Sweep runs a callback over contiguous column strips, inline for one
//     strip or concurrently through errgroup for several.
//
// Why:
//
//   - Every cell of the box is evaluated independently, so splitting the
//     coordinate space (never the seed list) lets callers accumulate into
//     per-strip buffers and merge once.
//
// Complexity:
//
//   - Distance, InBounds, OnEdge, Index, Coordinate: O(1).
//   - BoundsOf: O(n) for n seeds.
//   - Sweep: O(W×H×f) where f is the per-cell cost of the callback.
//
// Preconditions:
//
//   - The minimum corner is fixed at (0,0). Seeds with negative coordinates
//     are accepted but the cells left of or above the origin are never
//     sampled.
//
// Errors:
//
//   - ErrEmptySeeds: BoundsOf was called with no seeds.
package grid
