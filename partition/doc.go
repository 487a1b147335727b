// Package partition assigns every cell of a bounding grid to its uniquely
// closest seed under Manhattan distance, and separates the resulting
// regions into bounded and unbounded ones.
//
// 🚀 What is a closest-seed partition?
//
//	Each cell (x,y) in [0,XMax] × [0,YMax] is measured against every seed.
//	If exactly one seed attains the minimum distance, the cell joins that
//	seed's region; if two or more tie, the cell belongs to no region.
//
//	A region that reaches the outer ring of the box (x=0, y=0, x=XMax or
//	y=YMax) keeps growing beyond the sampled area, so its size cannot be
//	known. FilterBounded drops such regions whole; what remains are the
//	finite regions, and the largest of them is usually the answer sought.
//
// ✨ Key features:
//   - explicit fold per cell (Nearest): unique winner or tie, no shared flags
//   - arena RegionMap: one cell slice per seed id, sized once
//   - column-strip parallelism via Options.Workers, identical output for any
//     worker count
//   - cancellation through Options.Ctx
//
// ⚙️ Usage:
//
//	b, _ := grid.BoundsOf(seeds)
//	rm, err := partition.Partition(seeds, b, partition.DefaultOptions())
//	finite := partition.FilterBounded(rm, b)
//	id, size, ok := finite.Largest()
//
// Performance:
//
//   - Partition:     O(W·H·n) time, O(W·H) memory for n seeds.
//   - FilterBounded: O(W·H) time, O(n) memory.
//
// Errors:
//
//   - grid.ErrEmptySeeds   - no seeds supplied.
//   - ErrNoBoundedRegion   - LargestBounded found every region unbounded.
//   - context.Canceled / context.DeadlineExceeded - if opts.Ctx is done.
package partition
