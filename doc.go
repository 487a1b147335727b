// Package manhattan partitions an integer grid among a set of seed
// points under Manhattan distance.
//
// 🚀 What is it?
//
//	Given seeds on the plane, the engine samples every cell of the box
//	[0,XMax] × [0,YMax] spanned by them and answers two questions:
//		• which seed is uniquely closest to each cell, and which of the
//		  resulting regions are finite (they never reach the box edge)
//		• which cells lie within a total distance budget of all seeds
//
// ✨ Why this layout?
//
//   - Pure Go, no cgo; libraries never log, they return sentinel errors
//   - Every cell is independent, so sweeps split the columns into strips
//     and run them through errgroup with identical results for any
//     worker count
//   - Cancellation via context in every long-running operation
//
// Packages:
//
//	grid/      — Point, Distance, Bounds and the column-strip Sweep
//	partition/ — closest-seed partition, bounded-region filter, largest region
//	threshold/ — summed-distance region: count, cells, connected component
//	input/     — "x, y" per-line seed reader
//	render/    — terminal view of a partition (tcell)
//	cmd/chronal — command-line front end
//
// Quick ASCII example (seeds A..F, '.' = tie):
//
//	aaaaa.ccc
//	aAaaa.ccc
//	aaaddeccc
//	aadddeccC
//	..dDdeecc
//	bb.deEeec
//
// D and E never touch the border, so they are the bounded regions.
//
//	go install github.com/katalvlaran/manhattan/cmd/chronal@latest
package manhattan
