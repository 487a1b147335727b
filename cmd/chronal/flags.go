package main

import (
	"flag"
	"runtime"

	"github.com/katalvlaran/manhattan/threshold"
)

// Command-line flags.
var (
	// inputFlag names the seed file, one "x, y" per line.
	inputFlag = flag.String("input", "", "path to the seed coordinates file (required)")

	// limitFlag is the summed-distance limit for the safe region.
	limitFlag = flag.Int("limit", threshold.DefaultLimit, "exclusive summed-distance limit for the safe region")

	// workersFlag sets how many column strips are swept concurrently.
	workersFlag = flag.Int("workers", runtime.NumCPU(), "number of concurrent column strips")

	// renderFlag opens a terminal view of the partition after reporting.
	renderFlag = flag.Bool("render", false, "show the partition in the terminal (q or Esc to quit)")
)
