// Package grid defines the storage surface the simulations draw on and a
// packed bit-buffer implementation of it.
package grid

import "github.com/not-a-book-club/simulations/pkg/rng"

// Grid is the minimal contract a simulation needs: addressable booleans
// over a finite extent. Coordinates wrap toroidally on every axis, so any
// int is a valid coordinate, and Set reports the value previously stored so
// callers can detect changes without a second read.
//
// Grids span one to three dimensions; flat grids report the unused extents
// as 1 and ignore the extra coordinates.
type Grid interface {
	Get(x, y, z int) bool
	Set(x, y, z int, v bool) bool
	Width() int
	Height() int
	Depth() int
}

// Flipper is implemented by grids that can toggle a cell in place.
type Flipper interface {
	Flip(x, y, z int) bool
}

// Filler is implemented by grids that can bulk-assign every cell at once.
type Filler interface {
	Fill(v bool)
}

// Counter is implemented by grids that can report their set-cell count
// without a full scan.
type Counter interface {
	CountSet() int
}

// RandomFiller is implemented by grids that can randomize their backing
// store in bulk.
type RandomFiller interface {
	FillRandom(r *rng.RNG)
}

// Flip toggles the cell at (x, y, z) and reports the value it held before.
// Grids that implement Flipper toggle in place; otherwise Flip falls back
// to Get and Set.
func Flip(g Grid, x, y, z int) bool {
	if f, ok := g.(Flipper); ok {
		return f.Flip(x, y, z)
	}
	prev := g.Get(x, y, z)
	g.Set(x, y, z, !prev)
	return prev
}

// Fill assigns v to every cell.
func Fill(g Grid, v bool) {
	if f, ok := g.(Filler); ok {
		f.Fill(v)
		return
	}
	FillFunc(g, func(_, _, _ int) bool { return v })
}

// Clear resets every cell to false.
func Clear(g Grid) {
	Fill(g, false)
}

// FillFunc assigns fn(x, y, z) to every cell.
func FillFunc(g Grid, fn func(x, y, z int) bool) {
	w, h, d := Dims(g)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.Set(x, y, z, fn(x, y, z))
			}
		}
	}
}

// FillRandom randomizes every cell. Grids with packed backing stores
// randomize whole bytes at once; the fallback draws one boolean per cell.
func FillRandom(g Grid, r *rng.RNG) {
	if f, ok := g.(RandomFiller); ok {
		f.FillRandom(r)
		return
	}
	FillFunc(g, func(_, _, _ int) bool { return r.Bool() })
}

// CountSet reports how many cells of g are set.
func CountSet(g Grid) int {
	if c, ok := g.(Counter); ok {
		return c.CountSet()
	}
	n := 0
	w, h, d := Dims(g)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if g.Get(x, y, z) {
					n++
				}
			}
		}
	}
	return n
}

// Dims returns the extents of g on all three axes.
func Dims(g Grid) (w, h, d int) {
	return g.Width(), g.Height(), g.Depth()
}

// Wrap maps c onto [0, n) toroidally. It is exact for any c, including
// coordinates many periods outside the extent. n must be positive.
func Wrap(c, n int) int {
	return (c%n + n) % n
}
