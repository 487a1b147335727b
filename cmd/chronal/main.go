// Command chronal reads a seed file and reports the largest bounded
// closest-seed region and the size of the low summed-distance region.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/input"
	"github.com/katalvlaran/manhattan/partition"
	"github.com/katalvlaran/manhattan/render"
	"github.com/katalvlaran/manhattan/threshold"
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("chronal: ")

	if *inputFlag == "" {
		flag.Usage()
		os.Exit(2)
	}
	seeds, err := input.ReadSeedsFile(*inputFlag)
	if err != nil {
		log.Fatalf("reading seeds: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rm, b, err := run(ctx, os.Stdout, seeds, *limitFlag, *workersFlag)
	if err != nil {
		log.Fatal(err)
	}

	if *renderFlag {
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("opening terminal: %v", err)
		}
		if err := render.Show(screen, seeds, rm, b); err != nil {
			log.Fatalf("rendering: %v", err)
		}
	}
}

// run computes both reports for seeds and writes them to w. It returns
// the unfiltered partition for optional rendering.
func run(ctx context.Context, w io.Writer, seeds []grid.Point, limit, workers int) (*partition.RegionMap, grid.Bounds, error) {
	b, err := grid.BoundsOf(seeds)
	if err != nil {
		return nil, grid.Bounds{}, err
	}
	log.Printf("%d seeds, grid %dx%d, %d workers", len(seeds), b.Width(), b.Height(), workers)

	rm, err := partition.Partition(seeds, b, partition.Options{Workers: workers, Ctx: ctx})
	if err != nil {
		return nil, b, fmt.Errorf("partition: %w", err)
	}
	if ids := partition.Unbounded(rm, b); len(ids) > 0 {
		log.Printf("%d of %d regions unbounded", len(ids), rm.Len())
	}
	if _, size, ok := partition.FilterBounded(rm, b).Largest(); ok {
		fmt.Fprintf(w, "Largest bounded region: %d\n", size)
	} else {
		fmt.Fprintln(w, "Largest bounded region: none")
	}

	n, err := threshold.GrowRegion(seeds, b, limit, threshold.Options{Workers: workers, Ctx: ctx})
	switch {
	case errors.Is(err, threshold.ErrThreshold):
		return nil, b, fmt.Errorf("-limit %d: %w", limit, err)
	case err != nil:
		return nil, b, fmt.Errorf("threshold: %w", err)
	}
	fmt.Fprintf(w, "Safe region size: %d\n", n)

	return rm, b, nil
}
