package round

import (
	"github.com/sirupsen/logrus"

	"github.com/kalra1569/MazeSwiper/model"
)

func (c *Controller) startWander() {
	if c.wander != nil {
		return
	}
	c.wander = c.tasks.Add(c.sched.Every(c.cfg.WanderInterval, c.guard(c.wanderGoal)))
}

func (c *Controller) stopWander() {
	if c.wander == nil {
		return
	}
	c.wander.Cancel()
	c.wander = nil
}

// wanderGoal moves the goal to a random open neighbour or leaves it in place. The goal never
// steps onto the cell the player is resting on.
func (c *Controller) wanderGoal() {
	if c.phase != PhaseGoalVisible {
		return
	}
	options := []model.Cell{c.goal.Cell}
	for _, d := range model.Directions {
		next := c.goal.Cell.Step(d)
		if c.grid.IsOpen(next) && next != c.player.Cell {
			options = append(options, next)
		}
	}
	next := options[c.rng.Intn(len(options))]
	if next != c.goal.Cell {
		c.log.WithFields(logrus.Fields{"from": c.goal.Cell, "to": next}).Debug("goal wandered")
		c.goal = model.NewToken(next, c.cfg.CellSize)
	}
}
