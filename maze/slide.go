package maze

import (
	"time"

	"github.com/kalra1569/MazeSwiper/model"
)

// Slide moves from current in dir until the next cell is a wall or outside the grid, or
// until it enters goal. Pass model.Nowhere when there is no goal to stop on.
func Slide(g *model.Grid, current model.Cell, dir model.Direction, goal model.Cell) model.Cell {
	if current == goal || !dir.Valid() {
		return current
	}
	for {
		next := current.Step(dir)
		if !g.IsOpen(next) {
			return current
		}
		current = next
		if current == goal {
			return current
		}
	}
}

// SlideDuration is base/distance capped at max, so longer slides travel faster per cell
// and never take longer than max.
func SlideDuration(distance int, base, max time.Duration) time.Duration {
	if distance <= 0 {
		return 0
	}
	d := base / time.Duration(distance)
	if d > max {
		return max
	}
	return d
}
