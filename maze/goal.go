package maze

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/kalra1569/MazeSwiper/model"
)

// GoalPlacer picks the cell the goal token appears on.
type GoalPlacer struct {
	rng    *rand.Rand
	logger logrus.FieldLogger
}

func NewGoalPlacer(rng *rand.Rand, logger logrus.FieldLogger) *GoalPlacer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GoalPlacer{rng: rng, logger: logger}
}

// Corners returns the interior cells next to the four corners of g.
func Corners(g *model.Grid) []model.Cell {
	last, right := g.Rows()-2, g.Cols()-2
	return []model.Cell{
		{Row: 1, Col: 1},
		{Row: 1, Col: right},
		{Row: last, Col: 1},
		{Row: last, Col: right},
	}
}

// DefaultGoal is used when no other cell qualifies.
func DefaultGoal(g *model.Grid) model.Cell {
	return model.Cell{Row: g.Rows() - 2, Col: g.Cols() - 2}
}

// Place prefers a random corner reachable from player, then any other reachable open cell,
// and finally DefaultGoal, or the first other corner when the player stands on DefaultGoal.
// The result is never player.
func (p *GoalPlacer) Place(g *model.Grid, player model.Cell) model.Cell {
	corners := Corners(g)
	p.rng.Shuffle(len(corners), func(i, j int) { corners[i], corners[j] = corners[j], corners[i] })
	for _, c := range corners {
		if c != player && g.IsOpen(c) && IsReachable(g, player, c) {
			return c
		}
	}

	reachable := ReachableFrom(g, player)
	candidates := make([]model.Cell, 0, reachable.Size())
	// OpenCells is ordered, so the shuffle below stays deterministic for a seeded rng
	for _, c := range g.OpenCells() {
		if c != player && reachable.Has(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) > 0 {
		p.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
		p.logger.WithField("goal", candidates[0]).Debug("no corner qualified, goal placed inside the maze")
		return candidates[0]
	}

	fallback := DefaultGoal(g)
	if fallback == player {
		for _, c := range Corners(g) {
			if c != player {
				fallback = c
				break
			}
		}
	}
	p.logger.WithFields(logrus.Fields{
		"player": player,
		"goal":   fallback,
	}).Warn("no reachable goal candidate, using fixed cell")
	return fallback
}
