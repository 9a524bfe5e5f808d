package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/not-a-book-club/simulations/pkg/rng"
)

// boolGrid is a minimal Grid with no optional upgrades, for exercising the
// package-level fallbacks.
type boolGrid struct {
	w, h, d int
	cells   []bool
}

func newBoolGrid(w, h, d int) *boolGrid {
	return &boolGrid{w: w, h: h, d: d, cells: make([]bool, w*h*d)}
}

func (g *boolGrid) at(x, y, z int) int {
	return Wrap(x, g.w) + Wrap(y, g.h)*g.w + Wrap(z, g.d)*g.w*g.h
}

func (g *boolGrid) Get(x, y, z int) bool { return g.cells[g.at(x, y, z)] }

func (g *boolGrid) Set(x, y, z int, v bool) bool {
	i := g.at(x, y, z)
	prev := g.cells[i]
	g.cells[i] = v
	return prev
}

func (g *boolGrid) Width() int  { return g.w }
func (g *boolGrid) Height() int { return g.h }
func (g *boolGrid) Depth() int  { return g.d }

func TestFlipFallback(t *testing.T) {
	g := newBoolGrid(4, 4, 1)

	assert.False(t, Flip(g, 1, 2, 0))
	assert.True(t, g.Get(1, 2, 0))
	assert.True(t, Flip(g, 1, 2, 0))
	assert.False(t, g.Get(1, 2, 0))
}

func TestFlipUpgrade(t *testing.T) {
	g := NewBitGrid(4, 4)

	assert.False(t, Flip(g, 1, 2, 0))
	assert.True(t, g.Get(1, 2, 0))
	assert.True(t, Flip(g, 1, 2, 0))
	assert.True(t, g.IsEmpty())
}

func TestFillAndClear(t *testing.T) {
	g := newBoolGrid(3, 3, 2)

	Fill(g, true)
	assert.Equal(t, 18, CountSet(g))

	Clear(g)
	assert.Equal(t, 0, CountSet(g))
}

func TestFillFuncMatchesAcrossBackends(t *testing.T) {
	checker := func(x, y, z int) bool { return (x+y+z)%2 == 0 }

	a := newBoolGrid(5, 4, 3)
	b := NewBitGrid3D(5, 4, 3)
	FillFunc(a, checker)
	FillFunc(b, checker)

	for z := 0; z < 3; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 5; x++ {
				assert.Equal(t, a.Get(x, y, z), b.Get(x, y, z), "(%d,%d,%d)", x, y, z)
			}
		}
	}
	assert.Equal(t, CountSet(a), CountSet(b))
}

func TestCountSetFallback(t *testing.T) {
	g := newBoolGrid(6, 6, 1)
	g.Set(0, 0, 0, true)
	g.Set(5, 5, 0, true)
	g.Set(2, 3, 0, true)
	assert.Equal(t, 3, CountSet(g))
}

func TestFillRandomFallbackDeterministic(t *testing.T) {
	a := newBoolGrid(9, 7, 1)
	b := newBoolGrid(9, 7, 1)
	FillRandom(a, rng.New(5))
	FillRandom(b, rng.New(5))

	for i := range a.cells {
		assert.Equal(t, a.cells[i], b.cells[i], "cell %d", i)
	}
	n := CountSet(a)
	assert.Greater(t, n, 0)
	assert.Less(t, n, 63)
}

func TestDims(t *testing.T) {
	w, h, d := Dims(NewBitGrid3D(3, 5, 7))
	assert.Equal(t, 3, w)
	assert.Equal(t, 5, h)
	assert.Equal(t, 7, d)
}

func TestWrap(t *testing.T) {
	cases := []struct {
		c, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{12, 5, 2},
		{-11, 5, 4},
		{103, 5, 3},
		{-103, 5, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Wrap(tc.c, tc.n), "Wrap(%d, %d)", tc.c, tc.n)
	}
}
