package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/kalra1569/MazeSwiper/model"
)

// IsReachable runs a breadth-first search from `from` and stops as soon as `to` is found.
// Walls and out of bounds cells are never reachable.
func IsReachable(g *model.Grid, from, to model.Cell) bool {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return false
	}
	if from == to {
		return true
	}

	visited := mapset.New[model.Cell]()
	visited.Put(from)
	queue := []model.Cell{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range model.Directions {
			n := current.Step(d)
			if !g.IsOpen(n) || visited.Has(n) {
				continue
			}
			if n == to {
				return true
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return false
}

// ReachableFrom returns every open cell connected to from, from included. The set is empty
// when from is not open.
func ReachableFrom(g *model.Grid, from model.Cell) mapset.Set[model.Cell] {
	visited := mapset.New[model.Cell]()
	if !g.IsOpen(from) {
		return visited
	}

	visited.Put(from)
	queue := []model.Cell{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range model.Directions {
			n := current.Step(d)
			if g.IsOpen(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}
