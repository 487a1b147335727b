// Package render draws a closest-seed partition on a terminal screen.
//
// Every sampled cell becomes one rune: a seed's own cell shows its
// upper-case label, cells it owns the lower-case label, and tied cells a
// dot. Bounded regions are drawn bright, regions that reach the outer
// ring dimmed. Cells beyond the screen are clipped.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/manhattan/grid"
	"github.com/katalvlaran/manhattan/partition"
)

const (
	tieRune = '.'
	letters = 26
)

var (
	boundedStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	unboundedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	tieStyle       = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// Label returns the lower-case label of seed id, cycling a..z.
func Label(id int) rune {
	return 'a' + rune(id%letters)
}

// Paint draws rm over b onto screen, anchored at the top-left corner.
// rm should be the unfiltered partition; bounded and unbounded regions
// are told apart by b's outer ring. Paint does not call Show.
func Paint(screen tcell.Screen, seeds []grid.Point, rm *partition.RegionMap, b grid.Bounds) {
	w, h := screen.Size()
	owners := rm.Owners(b)

	outer := make(map[int]bool)
	for _, id := range partition.Unbounded(rm, b) {
		outer[id] = true
	}
	seedAt := make(map[grid.Point]int, len(seeds))
	for id, s := range seeds {
		seedAt[s] = id
	}

	screen.Clear()
	for y := 0; y <= b.YMax && y < h; y++ {
		for x := 0; x <= b.XMax && x < w; x++ {
			p := grid.Point{X: x, Y: y}
			id := owners[b.Index(p)]
			if id < 0 {
				screen.SetContent(x, y, tieRune, nil, tieStyle)
				continue
			}
			style := boundedStyle
			if outer[id] {
				style = unboundedStyle
			}
			r := Label(id)
			if sid, ok := seedAt[p]; ok && sid == id {
				r -= 'a' - 'A'
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Show paints the partition and blocks until the user presses Escape,
// Ctrl-C or q, repainting on resize. It initializes and finalizes screen.
func Show(screen tcell.Screen, seeds []grid.Point, rm *partition.RegionMap, b grid.Bounds) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Paint(screen, seeds, rm, b)
	screen.Show()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Paint(screen, seeds, rm, b)
			screen.Show()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			// screen finalized elsewhere
			return nil
		}
	}
}
