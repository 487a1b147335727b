package input_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/input"
)

// TestParsePoint covers accepted spellings and malformed lines.
func TestParsePoint(t *testing.T) {
	ok := []struct {
		line string
		want grid.Point
	}{
		{"46, 246", grid.Point{X: 46, Y: 246}},
		{"0,0", grid.Point{}},
		{"  7 ,   -3  ", grid.Point{X: 7, Y: -3}},
	}
	for _, tc := range ok {
		t.Run(tc.line, func(t *testing.T) {
			p, err := input.ParsePoint(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.want, p)
		})
	}

	bad := []string{"", "46 246", "x, 1", "1, y", "1, 2, 3", ","}
	for _, line := range bad {
		t.Run("Bad"+line, func(t *testing.T) {
			_, err := input.ParsePoint(line)
			require.ErrorIs(t, err, input.ErrMalformedPoint)
		})
	}
}

// TestParsePoint_NumError keeps the strconv cause reachable.
func TestParsePoint_NumError(t *testing.T) {
	_, err := input.ParsePoint("99999999999999999999, 1")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	require.ErrorIs(t, err, strconv.ErrRange)
}

// TestReadSeeds parses lines in order and skips blanks.
func TestReadSeeds(t *testing.T) {
	text := "1, 1\n1, 6\n\n8, 3\n3, 4\n5, 5\n8, 9\n"
	seeds, err := input.ReadSeeds(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{{X: 1, Y: 1}, {X: 1, Y: 6}, {X: 8, Y: 3}, {X: 3, Y: 4}, {X: 5, Y: 5}, {X: 8, Y: 9}}, seeds)
}

// TestReadSeeds_LineError reports the 1-based line of the failure.
func TestReadSeeds_LineError(t *testing.T) {
	_, err := input.ReadSeeds(strings.NewReader("1, 1\n\nbogus\n"))
	var le *input.LineError
	require.True(t, errors.As(err, &le))
	require.Equal(t, 3, le.Line)
	require.Equal(t, "bogus", le.Text)
	require.ErrorIs(t, err, input.ErrMalformedPoint)
	require.Contains(t, err.Error(), "line 3")
}

// TestReadSeeds_Empty treats an input without points as an empty seed set.
func TestReadSeeds_Empty(t *testing.T) {
	_, err := input.ReadSeeds(strings.NewReader("\n  \n"))
	require.ErrorIs(t, err, grid.ErrEmptySeeds)
}

// TestReadSeedsFile reads from disk and reports missing files.
func TestReadSeedsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.txt")
	require.NoError(t, os.WriteFile(path, []byte("46, 246\n"), 0o600))

	seeds, err := input.ReadSeedsFile(path)
	require.NoError(t, err)
	require.Equal(t, []grid.Point{{X: 46, Y: 246}}, seeds)

	_, err = input.ReadSeedsFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
