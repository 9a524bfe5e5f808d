package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderLogsFlips(t *testing.T) {
	rec := NewRecorder(NewBitGrid(8, 8))

	assert.False(t, rec.Flip(1, 2, 0))
	assert.True(t, rec.Flip(1, 2, 0))
	assert.False(t, rec.Flip(-1, 9, 0))

	flips := rec.Flips()
	require.Len(t, flips, 3)
	assert.Equal(t, FlipRecord{X: 1, Y: 2, Z: 0, Prev: false}, flips[0])
	assert.Equal(t, FlipRecord{X: 1, Y: 2, Z: 0, Prev: true}, flips[1])
	assert.Equal(t, FlipRecord{X: -1, Y: 9, Z: 0, Prev: false}, flips[2], "coordinates are logged unwrapped")
}

func TestRecorderForwardsStorage(t *testing.T) {
	inner := NewBitGrid(4, 6)
	rec := NewRecorder(inner)

	assert.Equal(t, 4, rec.Width())
	assert.Equal(t, 6, rec.Height())
	assert.Equal(t, 1, rec.Depth())

	assert.False(t, rec.Set(3, 5, 0, true))
	assert.True(t, inner.Get(3, 5, 0), "writes land in the wrapped grid")
	assert.True(t, rec.Get(3, 5, 0))
	assert.Empty(t, rec.Flips(), "Set is not recorded")
}

func TestRecorderSeenByPackageFlip(t *testing.T) {
	rec := NewRecorder(NewBitGrid(4, 4))

	Flip(rec, 2, 2, 0)
	Flip(rec, 0, 0, 0)

	require.Len(t, rec.Flips(), 2, "the package helper dispatches to the recorder's Flip")
}

func TestRecorderReset(t *testing.T) {
	inner := NewBitGrid(4, 4)
	rec := NewRecorder(inner)
	rec.Flip(1, 1, 0)
	require.Len(t, rec.Flips(), 1)

	rec.Reset()
	assert.Empty(t, rec.Flips())
	assert.True(t, inner.Get(1, 1, 0), "reset drops the log, not the storage")
	assert.Same(t, inner, rec.Grid())
}
