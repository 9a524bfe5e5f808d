// Package flipper implements a deterministic ray traversal that toggles
// one grid cell per step, reflecting off the grid boundary like light in a
// box.
package flipper

import (
	"github.com/not-a-book-club/simulations/pkg/grid"
)

// Vec is an integer position or direction over up to three axes.
type Vec struct {
	X, Y, Z int64
}

// BitFlipper walks a straight line across a grid, toggling the cell it
// occupies once per step and reflecting off the boundary. All arithmetic
// is integer-exact, so a traversal can be replayed or stepped backwards
// bit for bit.
//
// Positions live in a scaled coordinate space: each axis is stretched by
// the product of the other axes' direction magnitudes. That puts every
// cell crossing on an exact integer and makes all moving axes advance at
// the same scaled rate.
type BitFlipper struct {
	g   grid.Grid
	pos Vec
	dir Vec

	speed int   // signed index into the step schedule, never 0
	tick  int64 // sub-step budget carried between ticks
}

// New returns a traversal over a fresh cleared w by h BitGrid, starting at
// the origin heading along dir.
func New(w, h int, dir Vec) *BitFlipper {
	return NewWithGrid(grid.NewBitGrid(w, h), dir)
}

// NewWithGrid returns a traversal over g, starting at the origin heading
// along dir. The grid is held by reference and may be inspected or shared
// between steps.
func NewWithGrid(g grid.Grid, dir Vec) *BitFlipper {
	return &BitFlipper{g: g, dir: dir, speed: 1}
}

// Grid returns the grid the traversal writes to.
func (f *BitFlipper) Grid() grid.Grid { return f.g }

// Pos returns the current position in scaled coordinates.
func (f *BitFlipper) Pos() Vec { return f.pos }

// Dir returns the current direction. Reflections negate components in
// place, so this changes as the traversal bounces.
func (f *BitFlipper) Dir() Vec { return f.dir }

// Cell returns the grid cell the ray occupies, wrapped into the grid's
// extent. A ray sitting exactly on a crossing belongs to the cell ahead of
// its direction of travel.
func (f *BitFlipper) Cell() (x, y, z int) {
	sx, sy, sz := f.scales()
	return grid.Wrap(int(cellCoord(f.pos.X, sx, sign(f.dir.X))), f.g.Width()),
		grid.Wrap(int(cellCoord(f.pos.Y, sy, sign(f.dir.Y))), f.g.Height()),
		grid.Wrap(int(cellCoord(f.pos.Z, sz, sign(f.dir.Z))), f.g.Depth())
}

// SetDir changes the direction in place, rescaling the position into the
// new direction's coordinate space. The occupied cell is preserved;
// sub-cell progress may round away.
func (f *BitFlipper) SetDir(dir Vec) {
	ox, oy, oz := f.scales()
	f.dir = dir
	nx, ny, nz := f.scales()
	f.pos.X = f.pos.X * nx / ox
	f.pos.Y = f.pos.Y * ny / oy
	f.pos.Z = f.pos.Z * nz / oz
}

// Step advances the traversal n elementary steps, or -n steps backwards.
// Stepping backwards retraces the forward path exactly, un-toggling the
// same cells in reverse order.
func (f *BitFlipper) Step(n int) {
	travel := int64(1)
	if n < 0 {
		travel = -1
		n = -n
	}
	for ; n > 0; n-- {
		f.step(travel)
	}
}

// step performs one elementary step: reflect any axis whose motion points
// out of the grid, toggle the cell the ray occupies, then advance to the
// nearest cell crossing.
func (f *BitFlipper) step(travel int64) {
	sx, sy, sz := f.scales()

	bounce(&f.dir.X, f.pos.X, int64(f.g.Width())*sx, travel)
	bounce(&f.dir.Y, f.pos.Y, int64(f.g.Height())*sy, travel)
	bounce(&f.dir.Z, f.pos.Z, int64(f.g.Depth())*sz, travel)

	mx := sign(f.dir.X) * travel
	my := sign(f.dir.Y) * travel
	mz := sign(f.dir.Z) * travel

	grid.Flip(f.g,
		int(cellCoord(f.pos.X, sx, mx)),
		int(cellCoord(f.pos.Y, sy, my)),
		int(cellCoord(f.pos.Z, sz, mz)))

	var dist int64
	if mx != 0 {
		dist = crossingDist(f.pos.X, sx, mx)
	}
	if my != 0 {
		if d := crossingDist(f.pos.Y, sy, my); dist == 0 || d < dist {
			dist = d
		}
	}
	if mz != 0 {
		if d := crossingDist(f.pos.Z, sz, mz); dist == 0 || d < dist {
			dist = d
		}
	}
	if dist == 0 {
		// No axis is moving; the ray stays parked on its cell.
		return
	}

	f.pos.X += dist * mx
	f.pos.Y += dist * my
	f.pos.Z += dist * mz
}

// scales returns the per-axis coordinate stretch: the product of the other
// two axes' direction magnitudes, clamped to at least 1.
func (f *BitFlipper) scales() (sx, sy, sz int64) {
	ax := clampAbs(f.dir.X)
	ay := clampAbs(f.dir.Y)
	az := clampAbs(f.dir.Z)
	return ay * az, ax * az, ax * ay
}

// bounce negates *d when motion along the axis points out of [0, bound].
// An axis already heading back inside is left alone, which is what makes
// stepping backwards retrace reflections instead of re-reflecting.
func bounce(d *int64, pos, bound, travel int64) {
	m := sign(*d) * travel
	if m == 0 {
		return
	}
	if (pos <= 0 && m < 0) || (pos >= bound && m > 0) {
		*d = -*d
	}
}

// cellCoord divides a scaled coordinate down to its cell. A position
// sitting exactly on a crossing is assigned to the cell ahead of the
// motion, which for negative motion is the cell just departed.
func cellCoord(pos, scale, motion int64) int64 {
	if motion < 0 {
		pos--
	}
	return pos / scale
}

// crossingDist returns the strictly positive scaled distance from pos to
// the next multiple of scale along motion.
func crossingDist(pos, scale, m int64) int64 {
	return (NextMultiple(pos, scale, m) - pos) * m
}

// NextMultiple returns the first multiple of n strictly beyond i in the
// direction dir, treating n by magnitude. A coordinate already sitting on
// a multiple moves a full |n|:
//
//	NextMultiple(9, 5, -1) == 5
//	NextMultiple(-9, -10, -1) == -10
//	NextMultiple(10, 5, 1) == 15
func NextMultiple(i, n, dir int64) int64 {
	if n < 0 {
		n = -n
	}
	m := (i%n + n) % n
	if dir >= 0 {
		return i + n - m
	}
	if m == 0 {
		return i - n
	}
	return i - m
}

func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clampAbs(v int64) int64 {
	if v < 0 {
		v = -v
	}
	if v < 1 {
		return 1
	}
	return v
}
