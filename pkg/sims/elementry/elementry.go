// Package elementry implements Wolfram's elementary cellular automata on a
// one-dimensional grid row.
package elementry

import (
	"strings"

	"github.com/not-a-book-club/simulations/pkg/grid"
)

// Elementry steps a circular row of cells through one of the 256
// elementary cellular automaton rules. A cell's next state is the rule
// bit indexed by the three-cell neighborhood (left<<2 | center<<1 | right).
type Elementry struct {
	rule    uint8
	width   int
	cells   grid.Grid
	scratch grid.Grid
}

// New returns a cleared row of the given width stepping rule.
func New(rule uint8, width int) *Elementry {
	return NewWithGrid(rule, grid.NewBitGrid(width, 1))
}

// NewWithGrid returns an automaton stepping rule on g's first row. Each
// generation is written back into g.
func NewWithGrid(rule uint8, g grid.Grid) *Elementry {
	return &Elementry{
		rule:    rule,
		width:   g.Width(),
		cells:   g,
		scratch: grid.NewBitGrid(g.Width(), 1),
	}
}

// Rule returns the rule number.
func (e *Elementry) Rule() uint8 { return e.rule }

// Width returns the row length.
func (e *Elementry) Width() int { return e.width }

// Grid exposes the row.
func (e *Elementry) Grid() grid.Grid { return e.cells }

// Get reports the cell at x. Coordinates wrap.
func (e *Elementry) Get(x int) bool { return e.cells.Get(x, 0, 0) }

// Set stores v at x and reports the previous value. Coordinates wrap.
func (e *Elementry) Set(x int, v bool) bool { return e.cells.Set(x, 0, 0, v) }

// Clear marks every cell dead.
func (e *Elementry) Clear() { grid.Clear(e.cells) }

// ClearAlive marks every cell alive.
func (e *Elementry) ClearAlive() { grid.Fill(e.cells, true) }

// Step advances one generation and reports how many cells changed. Once
// this returns 0 the row will never change again.
func (e *Elementry) Step() int {
	for x := 0; x < e.width; x++ {
		n := 0
		if e.cells.Get(x-1, 0, 0) {
			n |= 4
		}
		if e.cells.Get(x, 0, 0) {
			n |= 2
		}
		if e.cells.Get(x+1, 0, 0) {
			n |= 1
		}
		e.scratch.Set(x, 0, 0, e.rule&(1<<n) != 0)
	}

	changed := 0
	for x := 0; x < e.width; x++ {
		next := e.scratch.Get(x, 0, 0)
		if e.cells.Set(x, 0, 0, next) != next {
			changed++
		}
	}
	return changed
}

// ASCII renders the row as 'O' and '.' characters.
func (e *Elementry) ASCII() string {
	var sb strings.Builder
	sb.Grow(e.width)
	for x := 0; x < e.width; x++ {
		if e.cells.Get(x, 0, 0) {
			sb.WriteByte('O')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
