// Package whack implements the whack-a-mole arcade game: a fixed grid of
// mole holes, a countdown round, a spawner that raises moles (more of them
// after a miss) and a resolver that turns taps into hits and misses.
package whack

import (
	"fmt"
	"math"
	"time"
)

// Tile is one mole hole.
type Tile struct {
	Occupied      bool
	OccupiedSince time.Duration // Round time at which the mole came up
}

// Board is an ordered, fixed-size collection of tiles.
// Tile indices are stable for the board's lifetime.
type Board struct {
	tiles []Tile
}

// NewBoard creates a board with size empty tiles.
func NewBoard(size int) *Board {
	return &Board{tiles: make([]Tile, max(0, size))}
}

// Size returns the number of tiles.
func (b *Board) Size() int {
	return len(b.tiles)
}

// Columns returns the number of columns used to lay the board out as a
// square-ish grid (3 for 9 tiles, 4 for 10-16 tiles).
func (b *Board) Columns() int {
	return gridColumns(len(b.tiles))
}

// Rows returns the number of rows used by the grid layout.
func (b *Board) Rows() int {
	cols := b.Columns()
	if cols == 0 {
		return 0
	}
	return (len(b.tiles) + cols - 1) / cols
}

func gridColumns(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

func (b *Board) checkIndex(i int) error {
	if i < 0 || i >= len(b.tiles) {
		return fmt.Errorf("%w: %d (board has %d tiles)", ErrInvalidIndex, i, len(b.tiles))
	}
	return nil
}

// Raise brings a mole up at tile i, stamped with the current round time.
func (b *Board) Raise(i int, now time.Duration) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if b.tiles[i].Occupied {
		return fmt.Errorf("%w: %d", ErrAlreadyOccupied, i)
	}
	b.tiles[i] = Tile{Occupied: true, OccupiedSince: now}
	return nil
}

// Lower puts the mole at tile i back in its hole. Lowering an empty tile
// is a no-op.
func (b *Board) Lower(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.tiles[i] = Tile{}
	return nil
}

// IsOccupied reports whether a mole is up at tile i.
// Out-of-range indices are never occupied.
func (b *Board) IsOccupied(i int) bool {
	if i < 0 || i >= len(b.tiles) {
		return false
	}
	return b.tiles[i].Occupied
}

// Age returns how long the mole at tile i has been up, or 0 if the tile is empty.
func (b *Board) Age(i int, now time.Duration) time.Duration {
	if !b.IsOccupied(i) {
		return 0
	}
	return max(0, now-b.tiles[i].OccupiedSince)
}

// FreePositions returns the indices of all empty tiles in ascending order.
func (b *Board) FreePositions() []int {
	free := make([]int, 0, len(b.tiles))
	for i, t := range b.tiles {
		if !t.Occupied {
			free = append(free, i)
		}
	}
	return free
}

// OccupiedCount returns the number of moles currently up.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, t := range b.tiles {
		if t.Occupied {
			n++
		}
	}
	return n
}

// IsFull reports whether every tile is occupied.
func (b *Board) IsFull() bool {
	return b.OccupiedCount() == len(b.tiles)
}

// Clear lowers every mole.
func (b *Board) Clear() {
	for i := range b.tiles {
		b.tiles[i] = Tile{}
	}
}

// Tiles returns a copy of the tiles.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}
