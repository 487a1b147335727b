package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/manhattan/grid"
)

// ParsePoint parses a single "x, y" line. Whitespace around either
// number is ignored.
func ParsePoint(line string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: missing comma", ErrMalformedPoint)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: x: %w", ErrMalformedPoint, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: y: %w", ErrMalformedPoint, err)
	}

	return grid.Point{X: x, Y: y}, nil
}

// ReadSeeds parses one point per line from r, in input order; the
// position of a point is its seed id.
// Returns *LineError for a bad line and grid.ErrEmptySeeds if r holds no
// points at all.
func ReadSeeds(r io.Reader) ([]grid.Point, error) {
	var seeds []grid.Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, &LineError{Line: n, Text: line, Err: err}
		}
		seeds = append(seeds, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	if len(seeds) == 0 {
		return nil, grid.ErrEmptySeeds
	}

	return seeds, nil
}

// ReadSeedsFile opens path and delegates to ReadSeeds.
func ReadSeedsFile(path string) ([]grid.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return ReadSeeds(f)
}
