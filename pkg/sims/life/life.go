// Package life implements Conway's Game of Life over a grid.
package life

import (
	"strings"

	"github.com/not-a-book-club/simulations/pkg/grid"
	"github.com/not-a-book-club/simulations/pkg/rng"
)

// Life plays Conway's Game of Life with toroidal wrapping. The board is a
// Grid accessed only through the interface, so any backing layout works.
type Life struct {
	w, h    int
	cells   grid.Grid
	scratch grid.Grid
}

// New returns a cleared w by h board backed by a BitGrid.
func New(w, h int) *Life {
	return NewWithGrid(grid.NewBitGrid(w, h))
}

// NewWithGrid returns a board that plays generations on g. The engine
// writes each generation back into g, so callers sharing g observe every
// step.
func NewWithGrid(g grid.Grid) *Life {
	w, h, _ := grid.Dims(g)
	return &Life{w: w, h: h, cells: g, scratch: grid.NewBitGrid(w, h)}
}

// NewFromPattern parses a textual pattern ('O' marks live cells) into a
// board exactly the pattern's size.
func NewFromPattern(text string) (*Life, error) {
	g, err := grid.ParseBitGrid(text, "O")
	if err != nil {
		return nil, err
	}
	return NewWithGrid(g), nil
}

// Width returns the board width.
func (l *Life) Width() int { return l.w }

// Height returns the board height.
func (l *Life) Height() int { return l.h }

// Grid exposes the board.
func (l *Life) Grid() grid.Grid { return l.cells }

// Get reports the cell at (x, y). Coordinates wrap.
func (l *Life) Get(x, y int) bool { return l.cells.Get(x, y, 0) }

// Set stores v at (x, y) and reports the previous value. Coordinates wrap.
func (l *Life) Set(x, y int, v bool) bool { return l.cells.Set(x, y, 0, v) }

// Clear kills every cell.
func (l *Life) Clear() { grid.Clear(l.cells) }

// ClearRandom replaces the board with uniform random noise.
func (l *Life) ClearRandom(r *rng.RNG) { grid.FillRandom(l.cells, r) }

// Step advances one generation and reports how many cells changed. Once
// this returns 0 the board has gone still and will never change again.
func (l *Life) Step() int {
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			n := l.neighbors(x, y)
			alive := l.cells.Get(x, y, 0)
			l.scratch.Set(x, y, 0, n == 3 || (alive && n == 2))
		}
	}

	// Write the new generation back so the caller's grid keeps its
	// identity; Set returning the previous value yields the change count.
	changed := 0
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			next := l.scratch.Get(x, y, 0)
			if l.cells.Set(x, y, 0, next) != next {
				changed++
			}
		}
	}
	return changed
}

func (l *Life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.cells.Get(x+dx, y+dy, 0) {
				n++
			}
		}
	}
	return n
}

// WriteRightGlider stamps a glider headed down and to the right:
//
//	.O.
//	..O
//	OOO
//
// The box's top-left corner lands at (x, y); all nine cells are written.
func (l *Life) WriteRightGlider(x, y int) {
	l.stamp(x, y, [3][3]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// WriteLeftGlider stamps a glider headed down and to the left:
//
//	.O.
//	O..
//	OOO
//
// The box's top-left corner lands at (x, y); all nine cells are written.
func (l *Life) WriteLeftGlider(x, y int) {
	l.stamp(x, y, [3][3]bool{
		{false, true, false},
		{true, false, false},
		{true, true, true},
	})
}

func (l *Life) stamp(x, y int, box [3][3]bool) {
	for dy, row := range box {
		for dx, v := range row {
			l.cells.Set(x+dx, y+dy, 0, v)
		}
	}
}

// String renders the board as rows of 'O' and '.', top to bottom.
func (l *Life) String() string {
	var sb strings.Builder
	sb.Grow((l.w + 1) * l.h)
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			if l.cells.Get(x, y, 0) {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
