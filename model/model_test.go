package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	t.Run("reads walls and open cells", func(t *testing.T) {
		g, err := ParseLines(
			"#####",
			"#...#",
			"###.#",
			"#...#",
			"#####",
		)
		require.NoError(t, err)
		assert.Equal(t, 5, g.Rows())
		assert.Equal(t, 5, g.Cols())
		assert.Equal(t, 7, g.OpenCount())
		assert.True(t, g.IsOpen(Cell{1, 1}))
		assert.False(t, g.IsOpen(Cell{2, 1}))
		assert.Equal(t, "#####\n#...#\n###.#\n#...#\n#####", g.String())
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseLines("###", "#.")
		assert.ErrorIs(t, err, ErrRagged)
	})

	t.Run("rejects unknown symbols", func(t *testing.T) {
		_, err := ParseLines("#x#")
		assert.ErrorIs(t, err, ErrSymbol)
	})

	t.Run("ignores surrounding blank lines", func(t *testing.T) {
		g, err := ParseGrid(strings.NewReader("\n###\n#.#\n###\n\n\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 1, g.OpenCount())
	})

	t.Run("rejects a blank line inside the board", func(t *testing.T) {
		_, err := ParseGrid(strings.NewReader("###\n\n#.#\n###"))
		assert.ErrorIs(t, err, ErrRagged)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseGrid(strings.NewReader("\n\n"))
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestGridBounds(t *testing.T) {
	g, err := NewGrid(2, 3, []bool{true, false, true, false, true, false})
	require.NoError(t, err)

	assert.True(t, g.InBounds(Cell{1, 2}))
	assert.False(t, g.InBounds(Cell{2, 0}))
	assert.False(t, g.InBounds(Nowhere))
	assert.False(t, g.IsOpen(Cell{-1, 0}))
	assert.Equal(t, []Cell{{0, 0}, {0, 2}, {1, 1}}, g.OpenCells())

	_, err = NewGrid(2, 2, []bool{true})
	assert.ErrorIs(t, err, ErrGridSize)
}

func TestGridIsACopy(t *testing.T) {
	cells := []bool{true, true, true, true}
	g, err := NewGrid(2, 2, cells)
	require.NoError(t, err)

	cells[0] = false
	assert.True(t, g.IsOpen(Cell{0, 0}))
}

func TestCell(t *testing.T) {
	c := Cell{Row: 3, Col: 4}
	assert.Equal(t, Cell{2, 4}, c.Step(Up))
	assert.Equal(t, Cell{4, 4}, c.Step(Down))
	assert.Equal(t, Cell{3, 3}, c.Step(Left))
	assert.Equal(t, Cell{3, 5}, c.Step(Right))
	assert.Equal(t, c, c.Step(Direction(0)))
	assert.Equal(t, 5, c.Distance(Cell{1, 1}))
	assert.Equal(t, "(3,4)", c.String())
}

func TestTokenCenter(t *testing.T) {
	tok := NewToken(Cell{Row: 1, Col: 2}, 10)
	assert.Equal(t, 25.0, tok.X)
	assert.Equal(t, 15.0, tok.Y)
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
		ok     bool
	}{
		{"right", 40, 10, Right, true},
		{"left", -40, 10, Left, true},
		{"down", 5, 30, Down, true},
		{"up", -5, -30, Up, true},
		{"tie goes vertical", 20, -20, Up, true},
		{"no movement", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SwipeDirection(tt.dx, tt.dy)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
