package model

import "fmt"

type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) Name() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Delta returns the row and column offset of a single step, or zero for an unknown direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

type Cell struct {
	Row, Col int
}

var (
	// Start is where the player token begins every round.
	Start = Cell{Row: 1, Col: 1}
	// Nowhere never matches a cell inside a grid.
	Nowhere = Cell{Row: -1, Col: -1}
)

func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Distance is the manhattan distance between two cells.
func (c Cell) Distance(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Token is a cell on the board together with its pixel position, which lags behind the
// cell while a slide is animated.
type Token struct {
	Cell Cell
	X, Y float64
}

// NewToken places a token at the centre of c.
func NewToken(c Cell, size float64) Token {
	x, y := Center(c, size)
	return Token{Cell: c, X: x, Y: y}
}

// Center returns the pixel centre of c for square cells of the given size.
func Center(c Cell, size float64) (float64, float64) {
	return (float64(c.Col) + .5) * size, (float64(c.Row) + .5) * size
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
