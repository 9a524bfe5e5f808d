package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiagonal(t *testing.T) {
	text := `
# This is a comment! Ignore me!
O...
.O..
..O.
...O
`
	g, err := ParseBitGrid(text, "O")
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 1, g.Depth())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, x == y, g.Get(x, y, 0), "(%d,%d)", x, y)
		}
	}
}

func TestParseReverseDiagonal(t *testing.T) {
	text := `
...X
..X.
.X..
X...
`
	g, err := ParseBitGrid(text, "X")
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 4, g.Height())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, x == 3-y, g.Get(x, y, 0), "(%d,%d)", x, y)
		}
	}
}

func TestParseMixedMarkers(t *testing.T) {
	text := "OX..\n..XO\n"
	g, err := ParseBitGrid(text, "OX")
	require.NoError(t, err)

	assert.Equal(t, 4, g.CountSet())
	assert.True(t, g.Get(0, 0, 0))
	assert.True(t, g.Get(1, 0, 0))
	assert.True(t, g.Get(2, 1, 0))
	assert.True(t, g.Get(3, 1, 0))
}

func TestParseTrailingComments(t *testing.T) {
	text := `
O..O  # corners
....
O..O
`
	g, err := ParseBitGrid(text, "O")
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.CountSet())
}

func TestParseBlankLinesSkipped(t *testing.T) {
	text := "OO\n\n   \nOO\n"
	g, err := ParseBitGrid(text, "O")
	require.NoError(t, err)

	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 4, g.CountSet())
}

func TestParseRaggedRows(t *testing.T) {
	text := "O\n..O\n.O\n"
	g, err := ParseBitGrid(text, "O")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width(), "width comes from the longest row")
	assert.Equal(t, 3, g.Height())
	assert.True(t, g.Get(0, 0, 0))
	assert.True(t, g.Get(2, 1, 0))
	assert.True(t, g.Get(1, 2, 0))
	assert.Equal(t, 3, g.CountSet(), "short rows leave trailing cells clear")
}

func TestParseInnerSpacesAreColumns(t *testing.T) {
	g, err := ParseBitGrid("O O", "O")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.True(t, g.Get(0, 0, 0))
	assert.False(t, g.Get(1, 0, 0))
	assert.True(t, g.Get(2, 0, 0))
}

func TestParseNoRows(t *testing.T) {
	for _, text := range []string{"", "\n\n", "# comment only\n", "   \n\t\n# also nothing"} {
		_, err := ParseBitGrid(text, "O")
		assert.Error(t, err, "%q", text)
	}
}
