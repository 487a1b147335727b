// Package threshold finds the cells of a bounding grid whose summed
// Manhattan distance to every seed stays below a limit.
//
// What:
//
//   - SumDistance totals the distance from one cell to all seeds.
//   - GrowRegion counts the cells with SumDistance < limit (strict).
//   - Region lists those cells; ConnectedRegion grows the 4-connected
//     component around the cell with the smallest sum.
//
// Why:
//
//   - A "safe" area that is close to everything at once. The sum splits
//     into f(x)+g(y) with f and g convex, so the qualifying cells always
//     form one connected blob and ConnectedRegion agrees with Region.
//
// Complexity:
//
//   - GrowRegion, Region:  O(W×H×n), Memory: O(workers) / O(result).
//   - ConnectedRegion:     O(W×H×n), Memory: O(W×H).
//
// Options:
//
//   - Options.Workers: column strips evaluated concurrently.
//   - Options.Ctx:     cancellation.
//
// Errors:
//
//   - grid.ErrEmptySeeds: no seeds supplied.
//   - ErrThreshold: limit is not positive.
package threshold
