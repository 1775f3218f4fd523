package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrGridSize = errors.New("grid cells do not match dimensions")

// Grid is a rectangular board of open and wall cells. A Grid is never modified after
// NewGrid returns it.
type Grid struct {
	rows, cols int
	open       []bool
	openCount  int
}

// NewGrid copies open, laid out row by row, into a new grid.
func NewGrid(rows, cols int, open []bool) (*Grid, error) {
	if rows <= 0 || cols <= 0 || len(open) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrGridSize, rows, cols, len(open))
	}
	g := &Grid{
		rows: rows,
		cols: cols,
		open: make([]bool, len(open)),
	}
	copy(g.open, open)
	for _, o := range g.open {
		if o {
			g.openCount++
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsOpen reports false for walls and for cells outside the grid.
func (g *Grid) IsOpen(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.open[c.Row*g.cols+c.Col]
}

func (g *Grid) OpenCount() int {
	return g.openCount
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	cells := make([]Cell, 0, g.openCount)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.open[r*g.cols+c] {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// String renders walls as '#' and open cells as '.', one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.open[r*g.cols+c] {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
