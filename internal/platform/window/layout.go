// Package window is the Ebitengine frontend: a desktop window with mouse
// taps, drawn tiles and synthesized sound cues.
package window

import "github.com/vovakirdan/tui-whack/internal/core"

// Logical window size in pixels; Ebitengine scales it to the real window.
const (
	ScreenWidth  = 640
	ScreenHeight = 720

	hudHeight   = 96
	boardMargin = 24
	tileGap     = 14
)

// boardRect is the pixel area holding the grid.
var boardRect = core.NewRect(
	boardMargin,
	hudHeight+boardMargin,
	ScreenWidth-2*boardMargin,
	ScreenHeight-hudHeight-2*boardMargin,
)

// tileLayout returns the pixel rectangles of size tiles laid out in cols
// columns, in tile index order.
func tileLayout(size, cols int) []core.Rect {
	if size <= 0 || cols <= 0 {
		return nil
	}
	rows := (size + cols - 1) / cols
	rects := core.GridLayout(boardRect, cols, rows, tileGap)
	if len(rects) > size {
		rects = rects[:size]
	}
	return rects
}

// tileAt returns the index of the rectangle containing (x, y), or -1.
func tileAt(rects []core.Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
