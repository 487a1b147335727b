package grid_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/manhattan/grid"
)

//----------------------------------------------------------------------------//
// Distance and BoundsOf Tests
//----------------------------------------------------------------------------//

// TestDistance checks the Manhattan metric, including symmetry and negatives.
func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Point
		want int
	}{
		{"Diagonal", grid.Point{X: 1, Y: 1}, grid.Point{X: 5, Y: 0}, 5},
		{"Vertical", grid.Point{X: 5, Y: 5}, grid.Point{X: 5, Y: 0}, 5},
		{"Same", grid.Point{X: 3, Y: 4}, grid.Point{X: 3, Y: 4}, 0},
		{"Negative", grid.Point{X: -2, Y: 3}, grid.Point{X: 2, Y: -3}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, grid.Distance(tc.a, tc.b))
			require.Equal(t, tc.want, grid.Distance(tc.b, tc.a), "distance must be symmetric")
		})
	}
}

// TestBoundsOf verifies that maxima are taken independently per axis.
func TestBoundsOf(t *testing.T) {
	seeds := []grid.Point{{1, 1}, {1, 6}, {8, 3}, {3, 4}, {5, 5}, {8, 9}}
	b, err := grid.BoundsOf(seeds)
	require.NoError(t, err)
	require.Equal(t, grid.Bounds{XMax: 8, YMax: 9}, b)
	require.Equal(t, 9, b.Width())
	require.Equal(t, 10, b.Height())
	require.Equal(t, 90, b.Cells())
}

// TestBoundsOf_Empty ensures an empty seed set is rejected.
func TestBoundsOf_Empty(t *testing.T) {
	_, err := grid.BoundsOf(nil)
	require.True(t, errors.Is(err, grid.ErrEmptySeeds))
}

// TestBoundsOf_Negative documents that negative seeds yield no cells.
func TestBoundsOf_Negative(t *testing.T) {
	b, err := grid.BoundsOf([]grid.Point{{-3, -1}})
	require.NoError(t, err)
	require.Zero(t, b.Cells())
	require.Nil(t, grid.Strips(b, 4))
}

//----------------------------------------------------------------------------//
// Bounds geometry Tests
//----------------------------------------------------------------------------//

// TestInBoundsAndOnEdge checks membership and the outer ring on a 4×3 box.
func TestInBoundsAndOnEdge(t *testing.T) {
	b := grid.Bounds{XMax: 3, YMax: 2}

	for _, p := range []grid.Point{{0, 0}, {3, 2}, {1, 1}} {
		assert.True(t, b.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Point{{-1, 0}, {4, 0}, {1, 3}, {2, -1}} {
		assert.False(t, b.InBounds(p), "InBounds(%v)", p)
	}

	edges := 0
	for x := 0; x <= b.XMax; x++ {
		for y := 0; y <= b.YMax; y++ {
			if b.OnEdge(grid.Point{X: x, Y: y}) {
				edges++
			}
		}
	}
	// 12 cells, 2 interior: (1,1) and (2,1).
	require.Equal(t, 10, edges)
	require.False(t, b.OnEdge(grid.Point{X: 1, Y: 1}))
}

// TestIndexCoordinateRoundTrip verifies that Index and Coordinate are inverses.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	b := grid.Bounds{XMax: 4, YMax: 6}
	for idx := 0; idx < b.Cells(); idx++ {
		p := b.Coordinate(idx)
		require.True(t, b.InBounds(p))
		require.Equal(t, idx, b.Index(p))
	}
}

// TestPointString checks the input line rendering.
func TestPointString(t *testing.T) {
	require.Equal(t, "46, 246", grid.Point{X: 46, Y: 246}.String())
}

//----------------------------------------------------------------------------//
// Strips and Sweep Tests
//----------------------------------------------------------------------------//

// TestStrips_CoverColumns verifies strips tile [0,Width) without gaps.
func TestStrips_CoverColumns(t *testing.T) {
	b := grid.Bounds{XMax: 9, YMax: 2}
	for _, workers := range []int{-1, 0, 1, 3, 4, 10, 50} {
		strips := grid.Strips(b, workers)
		require.NotEmpty(t, strips)
		require.LessOrEqual(t, len(strips), b.Width())
		next := 0
		for _, s := range strips {
			require.Equal(t, next, s.X0)
			require.Greater(t, s.X1, s.X0)
			next = s.X1
		}
		require.Equal(t, b.Width(), next)
	}
}

// TestSweep_VisitsEveryColumnOnce runs a concurrent sweep and counts visits.
func TestSweep_VisitsEveryColumnOnce(t *testing.T) {
	b := grid.Bounds{XMax: 99, YMax: 0}
	strips := grid.Strips(b, 7)
	var mu sync.Mutex
	seen := make([]int, b.Width())

	err := grid.Sweep(context.Background(), strips, func(_ context.Context, _ int, s grid.Strip) error {
		mu.Lock()
		defer mu.Unlock()
		for x := s.X0; x < s.X1; x++ {
			seen[x]++
		}
		return nil
	})
	require.NoError(t, err)
	for x, n := range seen {
		require.Equal(t, 1, n, "column %d", x)
	}
}

// TestSweep_Error propagates the first callback error.
func TestSweep_Error(t *testing.T) {
	boom := errors.New("boom")
	strips := grid.Strips(grid.Bounds{XMax: 7, YMax: 7}, 4)
	err := grid.Sweep(context.Background(), strips, func(_ context.Context, i int, _ grid.Strip) error {
		if i == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

// TestSweep_Canceled returns the context error without calling fn.
func TestSweep_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := grid.Sweep(ctx, grid.Strips(grid.Bounds{XMax: 3, YMax: 3}, 1), func(context.Context, int, grid.Strip) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}
