/*
Package maze builds and queries the boards the game is played on.

Generation uses a randomized depth-first backtracker on the odd-indexed lattice of the grid,
so every board is a perfect maze: one component of open cells and no loops. The package also
answers reachability questions, chooses where the goal appears and resolves slide moves.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kalra1569/MazeSwiper/model"
)

// MinDimension is the smallest row or column count that still holds a 2x2 lattice.
const MinDimension = 5

var (
	ErrDimensions   = errors.New("maze dimensions must be odd and at least 5")
	ErrDisconnected = errors.New("maze has open cells unreachable from the start")
	ErrNotPerfect   = errors.New("maze open cell count does not match a spanning tree")
)

// lattice step from one lattice cell to its neighbour, in grid coordinates
var latticeSteps = [4]struct{ dr, dc int }{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// ValidDimensions reports whether rows x cols can be generated.
func ValidDimensions(rows, cols int) error {
	if rows < MinDimension || cols < MinDimension || rows%2 == 0 || cols%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrDimensions, rows, cols)
	}
	return nil
}

// Generate carves a new perfect maze. The same rng state always yields the same maze.
func Generate(rows, cols int, rng *rand.Rand) (*model.Grid, error) {
	if err := ValidDimensions(rows, cols); err != nil {
		return nil, err
	}

	open := make([]bool, rows*cols)
	carve := func(c model.Cell) { open[c.Row*cols+c.Col] = true }
	isOpen := func(c model.Cell) bool { return open[c.Row*cols+c.Col] }
	inLattice := func(c model.Cell) bool {
		return c.Row > 0 && c.Row < rows-1 && c.Col > 0 && c.Col < cols-1
	}

	// lattice cells are the only cells opened before being visited, so open doubles as visited
	start := model.Cell{Row: 1, Col: 1}
	carve(start)
	stack := []model.Cell{start}
	candidates := make([]model.Cell, 0, len(latticeSteps))

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, s := range latticeSteps {
			next := model.Cell{Row: current.Row + s.dr, Col: current.Col + s.dc}
			if inLattice(next) && !isOpen(next) {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		carve(model.Cell{Row: (current.Row + next.Row) / 2, Col: (current.Col + next.Col) / 2})
		carve(next)
		stack = append(stack, next)
	}

	carve(model.Start)
	carve(model.Cell{Row: rows - 2, Col: cols - 2})

	return model.NewGrid(rows, cols, open)
}

// LatticeSize is the number of lattice cells of a rows x cols maze.
func LatticeSize(rows, cols int) int {
	return ((rows - 1) / 2) * ((cols - 1) / 2)
}

// Verify checks that g is a perfect maze: every open cell reachable from the start and
// exactly one connector per lattice edge of a spanning tree.
func Verify(g *model.Grid) error {
	if !g.IsOpen(model.Start) {
		return fmt.Errorf("%w: start %v is a wall", ErrDisconnected, model.Start)
	}
	reached := ReachableFrom(g, model.Start).Size()
	if reached != g.OpenCount() {
		return fmt.Errorf("%w: reached %d of %d open cells", ErrDisconnected, reached, g.OpenCount())
	}
	lattice := LatticeSize(g.Rows(), g.Cols())
	if want := 2*lattice - 1; g.OpenCount() != want {
		return fmt.Errorf("%w: %d open cells, want %d", ErrNotPerfect, g.OpenCount(), want)
	}
	return nil
}
