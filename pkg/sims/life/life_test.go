package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/not-a-book-club/simulations/pkg/grid"
	"github.com/not-a-book-club/simulations/pkg/rng"
)

func TestBlockIsStable(t *testing.T) {
	l := New(5, 5)
	l.Set(1, 1, true)
	l.Set(2, 1, true)
	l.Set(1, 2, true)
	l.Set(2, 2, true)

	assert.Equal(t, 0, l.Step(), "a block never changes")
	assert.True(t, l.Get(1, 1))
	assert.True(t, l.Get(2, 2))
	assert.Equal(t, 4, grid.CountSet(l.Grid()))
}

func TestBlinkerOscillates(t *testing.T) {
	l := New(5, 5)
	l.Set(1, 1, true)
	l.Set(1, 2, true)
	l.Set(1, 3, true)

	assert.Equal(t, 4, l.Step(), "two cells die and two are born")
	for x := 0; x < 3; x++ {
		assert.True(t, l.Get(x, 2), "(%d,2)", x)
	}
	assert.False(t, l.Get(1, 1))
	assert.False(t, l.Get(1, 3))

	assert.Equal(t, 4, l.Step())
	for y := 1; y < 4; y++ {
		assert.True(t, l.Get(1, y), "(1,%d)", y)
	}
}

func TestEmptyBoardStaysStill(t *testing.T) {
	l := New(8, 8)
	assert.Equal(t, 0, l.Step())
	assert.Equal(t, 0, grid.CountSet(l.Grid()))
}

func TestSetReturnsPrevious(t *testing.T) {
	l := New(5, 5)

	assert.False(t, l.Set(0, 0, true))
	assert.True(t, l.Set(0, 0, true))
	assert.True(t, l.Set(0, 0, false))
	assert.False(t, l.Set(0, 0, false))
}

func TestGetSetWrap(t *testing.T) {
	l := New(7, 5)
	l.Set(-1, -1, true)

	assert.True(t, l.Get(6, 4))
	assert.True(t, l.Get(13, 9), "wraps across multiple periods")
}

func TestRightGliderTranslates(t *testing.T) {
	l := New(16, 16)
	l.WriteRightGlider(2, 2)
	require.Equal(t, 5, grid.CountSet(l.Grid()))

	before := l.String()
	for i := 0; i < 4; i++ {
		assert.Greater(t, l.Step(), 0, "generation %d", i+1)
	}

	// Four generations translate the glider one cell down-right.
	moved := New(16, 16)
	moved.WriteRightGlider(3, 3)
	assert.Equal(t, moved.String(), l.String())
	assert.NotEqual(t, before, l.String())
}

func TestLeftGliderTranslates(t *testing.T) {
	l := New(16, 16)
	l.WriteLeftGlider(8, 2)

	for i := 0; i < 4; i++ {
		l.Step()
	}

	moved := New(16, 16)
	moved.WriteLeftGlider(7, 3)
	assert.Equal(t, moved.String(), l.String())
}

func TestGliderStampOverwritesBox(t *testing.T) {
	l := New(8, 8)
	grid.Fill(l.Grid(), true)
	l.WriteRightGlider(1, 1)

	assert.False(t, l.Get(1, 1), "dead cells of the box are written too")
	assert.False(t, l.Get(2, 2))
	assert.True(t, l.Get(2, 1))
	assert.True(t, l.Get(0, 0), "cells outside the box are untouched")
}

func TestClearRandomDeterministic(t *testing.T) {
	a := New(12, 9)
	b := New(12, 9)
	a.ClearRandom(rng.New(1234))
	b.ClearRandom(rng.New(1234))

	assert.Equal(t, a.String(), b.String())

	c := New(12, 9)
	c.ClearRandom(rng.New(4321))
	assert.NotEqual(t, a.String(), c.String())
}

func TestClear(t *testing.T) {
	l := New(6, 6)
	l.ClearRandom(rng.New(7))
	require.Greater(t, grid.CountSet(l.Grid()), 0)

	l.Clear()
	assert.Equal(t, 0, grid.CountSet(l.Grid()))
}

func TestNewWithGridKeepsIdentity(t *testing.T) {
	g := grid.NewBitGrid(8, 8)
	l := NewWithGrid(g)
	l.WriteRightGlider(2, 2)
	l.Step()

	assert.Same(t, g, l.Grid(), "stepping never swaps the caller's grid away")
	assert.Equal(t, 5, g.CountSet(), "a glider stays five cells")
}

func TestNewFromPattern(t *testing.T) {
	l, err := NewFromPattern(`
# spinner
.O.
.O.
.O.
`)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Width())
	assert.Equal(t, 3, l.Height())
	assert.Equal(t, 3, grid.CountSet(l.Grid()))

	_, err = NewFromPattern("# nothing here\n")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	l := New(3, 2)
	l.Set(0, 0, true)
	l.Set(2, 1, true)
	assert.Equal(t, "O..\n..O\n", l.String())
}
