package grid

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/not-a-book-club/simulations/pkg/rng"
)

// BitGrid stores a toroidal grid one bit per cell. Cells pack into a flat
// byte buffer in x, then y, then z order, least significant bit first, so a
// w by h by d grid occupies exactly ceil(w*h*d/8) bytes.
type BitGrid struct {
	buf []byte
	w   int
	h   int
	d   int
}

// NewBitGrid returns a cleared two-dimensional w by h grid.
func NewBitGrid(w, h int) *BitGrid {
	return NewBitGrid3D(w, h, 1)
}

// NewBitGrid3D returns a cleared w by h by d grid.
func NewBitGrid3D(w, h, d int) *BitGrid {
	if w < 0 || h < 0 || d < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%dx%d", w, h, d))
	}
	cells := w * h * d
	return &BitGrid{
		buf: make([]byte, (cells+7)/8),
		w:   w,
		h:   h,
		d:   d,
	}
}

// NewBitGridFunc returns a w by h grid with every cell initialized to fn(x, y).
func NewBitGridFunc(w, h int, fn func(x, y int) bool) *BitGrid {
	g := NewBitGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fn(x, y) {
				g.Set(x, y, 0, true)
			}
		}
	}
	return g
}

// Width returns the extent along x.
func (g *BitGrid) Width() int { return g.w }

// Height returns the extent along y.
func (g *BitGrid) Height() int { return g.h }

// Depth returns the extent along z.
func (g *BitGrid) Depth() int { return g.d }

// index maps wrapped coordinates to a byte offset and bit position.
func (g *BitGrid) index(x, y, z int) (int, uint) {
	x = Wrap(x, g.w)
	y = Wrap(y, g.h)
	z = Wrap(z, g.d)
	linear := x + y*g.w + z*g.w*g.h
	return linear >> 3, uint(linear & 7)
}

// Get reports the cell at (x, y, z). Coordinates wrap.
func (g *BitGrid) Get(x, y, z int) bool {
	i, bit := g.index(x, y, z)
	return g.buf[i]&(1<<bit) != 0
}

// Set stores v at (x, y, z) and reports the previous value. Coordinates wrap.
func (g *BitGrid) Set(x, y, z int, v bool) bool {
	i, bit := g.index(x, y, z)
	mask := byte(1) << bit
	prev := g.buf[i]&mask != 0
	if v {
		g.buf[i] |= mask
	} else {
		g.buf[i] &^= mask
	}
	return prev
}

// Flip toggles the cell at (x, y, z) and reports the previous value.
// Coordinates wrap.
func (g *BitGrid) Flip(x, y, z int) bool {
	i, bit := g.index(x, y, z)
	mask := byte(1) << bit
	prev := g.buf[i]&mask != 0
	g.buf[i] ^= mask
	return prev
}

// Fill assigns v to every cell. Padding bits in the final partial byte
// stay zero.
func (g *BitGrid) Fill(v bool) {
	var b byte
	if v {
		b = 0xFF
	}
	for i := range g.buf {
		g.buf[i] = b
	}
	if v {
		g.maskTail()
	}
}

// Clear resets every cell to false.
func (g *BitGrid) Clear() {
	g.Fill(false)
}

// FillRandom randomizes the backing buffer whole bytes at a time. Padding
// bits in the final partial byte stay zero.
func (g *BitGrid) FillRandom(r *rng.RNG) {
	r.FillBytes(g.buf)
	g.maskTail()
}

// maskTail zeroes any padding bits in the final partial byte.
func (g *BitGrid) maskTail() {
	if tail := uint(g.w*g.h*g.d) & 7; tail != 0 {
		g.buf[len(g.buf)-1] &= 1<<tail - 1
	}
}

// Bytes returns the packed backing buffer. The slice aliases the grid's
// storage; treat it as read-only.
func (g *BitGrid) Bytes() []byte { return g.buf }

// MutableBytes returns the packed backing buffer for direct writes. Writers
// own any padding bits they touch.
func (g *BitGrid) MutableBytes() []byte { return g.buf }

// CountSet reports how many bits of the backing buffer are set.
func (g *BitGrid) CountSet() int {
	n := 0
	for _, b := range g.buf {
		n += bits.OnesCount8(b)
	}
	return n
}

// CountUnset reports how many bits of the backing buffer are clear.
// CountSet and CountUnset always sum to eight times the buffer length.
func (g *BitGrid) CountUnset() int {
	return len(g.buf)*8 - g.CountSet()
}

// IsEmpty reports whether no bit is set.
func (g *BitGrid) IsEmpty() bool {
	for _, b := range g.buf {
		if b != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both grids have identical dimensions and contents.
func (g *BitGrid) Equal(o *BitGrid) bool {
	return g.w == o.w && g.h == o.h && g.d == o.d && bytes.Equal(g.buf, o.buf)
}

// DiffWith returns a change mask with a bit set wherever g and o disagree.
// Neither input is modified. Panics when the dimensions differ.
func (g *BitGrid) DiffWith(o *BitGrid) *BitGrid {
	if g.w != o.w || g.h != o.h || g.d != o.d {
		panic(fmt.Sprintf("grid: DiffWith dimension mismatch: %dx%dx%d vs %dx%dx%d",
			g.w, g.h, g.d, o.w, o.h, o.d))
	}
	diff := NewBitGrid3D(g.w, g.h, g.d)
	for i := range g.buf {
		diff.buf[i] = g.buf[i] ^ o.buf[i]
	}
	return diff
}

// String summarizes the grid for debugging.
func (g *BitGrid) String() string {
	return fmt.Sprintf("BitGrid(%dx%dx%d, %d set)", g.w, g.h, g.d, g.CountSet())
}
