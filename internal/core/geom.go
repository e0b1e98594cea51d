// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// GridLayout splits r into a cols x rows grid of equally sized cells,
// separated by gap cells. Cells are returned in row-major order.
// Leftover space is split evenly around the grid.
func GridLayout(r Rect, cols, rows, gap int) []Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cellW := (r.W - gap*(cols-1)) / cols
	cellH := (r.H - gap*(rows-1)) / rows
	if cellW <= 0 || cellH <= 0 {
		return nil
	}

	usedW := cellW*cols + gap*(cols-1)
	usedH := cellH*rows + gap*(rows-1)
	offX := r.X + (r.W-usedW)/2
	offY := r.Y + (r.H-usedH)/2

	cells := make([]Rect, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			cells = append(cells, Rect{
				X: offX + col*(cellW+gap),
				Y: offY + row*(cellH+gap),
				W: cellW,
				H: cellH,
			})
		}
	}
	return cells
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
