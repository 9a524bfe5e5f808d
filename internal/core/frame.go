package core

import "github.com/not-a-book-club/simulations/pkg/grid"

// Frame stores a 2D grid of byte-sized cell values in row-major order. Sims
// use it as the display buffer behind Cells, filling it from their bit
// grids each step.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Frame) Cells() []uint8 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// Clear fills the frame with zeros.
func (f *Frame) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// ReadGrid fills the frame from plane z of g, marking set cells as 1.
func (f *Frame) ReadGrid(g grid.Grid, z int) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			v := uint8(0)
			if g.Get(x, y, z) {
				v = 1
			}
			f.data[f.Index(x, y)] = v
		}
	}
}

// ReadRow fills display row to from row 0 of g, marking set cells as 1.
func (f *Frame) ReadRow(g grid.Grid, to int) {
	if to < 0 || to >= f.H {
		return
	}
	for x := 0; x < f.W; x++ {
		v := uint8(0)
		if g.Get(x, 0, 0) {
			v = 1
		}
		f.data[f.Index(x, to)] = v
	}
}

// ScrollDown shifts the frame contents down by rows, zero-filling the top.
func (f *Frame) ScrollDown(rows int) {
	if rows <= 0 {
		return
	}
	if rows >= f.H {
		f.Clear()
		return
	}
	copy(f.data[rows*f.W:], f.data[:(f.H-rows)*f.W])
	head := f.data[:rows*f.W]
	for i := range head {
		head[i] = 0
	}
}