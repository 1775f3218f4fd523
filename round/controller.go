// Package round runs the game: one maze per round, a countdown, a goal that appears after a
// delay, and swipes that slide the player until something stops it.
package round

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kalra1569/MazeSwiper/config"
	"github.com/kalra1569/MazeSwiper/maze"
	"github.com/kalra1569/MazeSwiper/model"
	"github.com/kalra1569/MazeSwiper/sched"
)

const maxGenerateAttempts = 10

var ErrNoScheduler = errors.New("round: scheduler is required")

// GridFactory builds the maze of a new round.
type GridFactory func(rows, cols int, rng *rand.Rand) (*model.Grid, error)

// Deps are the collaborators of a Controller. Scheduler is required; everything else has a
// usable default.
type Deps struct {
	Scheduler  sched.Scheduler
	Rand       *rand.Rand
	Wellness   Wellness
	Logger     logrus.FieldLogger
	Generate   GridFactory
	OnRoundEnd func(Result)
}

// Controller owns the round state. It is not safe for concurrent use: every method and every
// scheduled callback must run on the scheduler's event loop.
type Controller struct {
	cfg      config.Config
	sched    sched.Scheduler
	rng      *rand.Rand
	wellness Wellness
	logger   logrus.FieldLogger
	generate GridFactory
	onEnd    func(Result)
	placer   *maze.GoalPlacer

	generation uint64
	tasks      sched.Group
	wander     sched.Task
	log        logrus.FieldLogger

	id          uuid.UUID
	phase       Phase
	grid        *model.Grid
	player      model.Token
	goal        model.Token
	goalVisible bool
	remaining   int
	completed   int
	slide       *slide
	hardMode    bool
}

func New(cfg config.Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	if deps.Generate == nil {
		deps.Generate = maze.Generate
	}
	c := &Controller{
		cfg:      cfg,
		sched:    deps.Scheduler,
		rng:      deps.Rand,
		wellness: deps.Wellness,
		logger:   deps.Logger,
		generate: deps.Generate,
		onEnd:    deps.OnRoundEnd,
		placer:   maze.NewGoalPlacer(deps.Rand, deps.Logger),
		phase:    PhaseIdle,
		player:   model.NewToken(model.Start, cfg.CellSize),
		goal:     model.NewToken(model.Nowhere, cfg.CellSize),
		hardMode: cfg.HardMode,
	}
	c.log = c.logger.WithField("phase", c.phase.Name())
	return c, nil
}

// Start begins a new round, abandoning the current one if any.
func (c *Controller) Start() {
	c.startRound()
}

// Stop cancels everything scheduled for the current round and returns to idle.
func (c *Controller) Stop() {
	c.supersede()
	c.setPhase(PhaseIdle)
}

// Resume dismisses a pending wellness interruption and starts the next round.
func (c *Controller) Resume() {
	if c.phase != PhaseWellness {
		c.log.Debug("resume ignored, no wellness interruption pending")
		return
	}
	c.startRound()
}

// Swipe starts a slide in dir. It returns false when the swipe was ignored.
func (c *Controller) Swipe(dir model.Direction) bool {
	if !c.phase.Playing() || c.slide != nil || !dir.Valid() {
		return false
	}
	goal := model.Nowhere
	if c.goalVisible {
		goal = c.goal.Cell
	}
	from := c.player.Cell
	dest := maze.Slide(c.grid, from, dir, goal)
	if dest == from {
		return false
	}
	c.log.WithFields(logrus.Fields{"from": from, "to": dest, "direction": dir.Name()}).Debug("slide")
	c.beginSlide(dest)
	return true
}

// SetHardMode toggles the wandering goal. It takes effect immediately if the goal is visible.
func (c *Controller) SetHardMode(on bool) {
	if c.hardMode == on {
		return
	}
	c.hardMode = on
	c.log.WithField("hard", on).Info("hard mode changed")
	if on && c.phase == PhaseGoalVisible {
		c.startWander()
	} else if !on {
		c.stopWander()
	}
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		RoundID:         c.id,
		Phase:           c.phase,
		Grid:            c.grid,
		Player:          c.player,
		Goal:            c.goal,
		GoalVisible:     c.goalVisible,
		TimeRemaining:   c.remaining,
		RoundsCompleted: c.completed,
		Moving:          c.slide != nil,
		HardMode:        c.hardMode,
	}
	if c.slide != nil {
		s.SlideProgress = c.slide.progress
	}
	return s
}

// guard drops f once the round it was scheduled for has been superseded.
func (c *Controller) guard(f func()) func() {
	generation := c.generation
	return func() {
		if generation != c.generation {
			return
		}
		f()
	}
}

func (c *Controller) supersede() {
	c.generation++
	c.tasks.Cancel()
	c.wander = nil
	c.slide = nil
}

func (c *Controller) setPhase(p Phase) {
	c.phase = p
	c.log = c.logger.WithFields(logrus.Fields{"round": c.id, "phase": p.Name()})
}

func (c *Controller) startRound() {
	c.supersede()
	c.id = uuid.New()
	c.grid = c.buildGrid()
	c.player = model.NewToken(model.Start, c.cfg.CellSize)
	c.goal = model.NewToken(model.Nowhere, c.cfg.CellSize)
	c.goalVisible = false
	c.remaining = c.cfg.CountdownUnits()
	c.setPhase(PhaseGoalHidden)

	c.tasks.Add(c.sched.Every(c.cfg.TickInterval, c.guard(c.tick)))
	c.tasks.Add(c.sched.After(c.cfg.RevealDelay, c.guard(c.reveal)))
	c.log.WithField("remaining", c.remaining).Info("round started")
}

// buildGrid generates and verifies a maze. A maze failing verification is a bug in the
// generator: strict mode panics, otherwise the maze is regenerated a few times.
func (c *Controller) buildGrid() *model.Grid {
	var (
		grid *model.Grid
		err  error
	)
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		grid, err = c.generate(c.cfg.Rows, c.cfg.Cols, c.rng)
		if err == nil {
			err = maze.Verify(grid)
		}
		if err == nil {
			return grid
		}
		if c.cfg.Strict {
			panic(fmt.Sprintf("maze generation: %v", err))
		}
		c.logger.WithError(err).WithField("attempt", attempt).Error("generated maze rejected, regenerating")
	}
	if grid == nil {
		panic(fmt.Sprintf("maze generation failed %d times: %v", maxGenerateAttempts, err))
	}
	c.logger.WithError(err).Error("keeping unverified maze")
	return grid
}

func (c *Controller) tick() {
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.endRound(OutcomeTimeout)
	}
}

func (c *Controller) reveal() {
	anchor := c.player.Cell
	if c.slide != nil {
		anchor = c.slide.to
	}
	c.goal = model.NewToken(c.placer.Place(c.grid, anchor), c.cfg.CellSize)
	c.goalVisible = true
	c.setPhase(PhaseGoalVisible)
	c.log.WithField("goal", c.goal.Cell).Info("goal revealed")
	if c.hardMode {
		c.startWander()
	}
}

func (c *Controller) beginSlide(dest model.Cell) {
	from := c.player.Cell
	duration := maze.SlideDuration(from.Distance(dest), c.cfg.SlideBaseDuration, c.cfg.MaxSlideDuration)
	s := newSlide(from, dest, duration, c.cfg.FrameInterval)
	s.onChange = func(float64) {
		c.player.X, c.player.Y = s.position(c.cfg.CellSize)
	}
	s.addOnFinish(func() {
		c.commitSlide(s)
	})
	c.slide = s
	s.task = c.tasks.Add(c.sched.Every(c.cfg.FrameInterval, c.guard(s.step)))
}

func (c *Controller) commitSlide(s *slide) {
	s.task.Cancel()
	c.slide = nil
	c.player = model.NewToken(s.to, c.cfg.CellSize)
	if c.goalVisible && s.to == c.goal.Cell {
		c.endRound(OutcomeWin)
	}
}

func (c *Controller) endRound(outcome Outcome) {
	if outcome == OutcomeWin {
		c.completed++
	}
	result := Result{RoundID: c.id, Outcome: outcome, Completed: c.completed, Remaining: c.remaining}
	c.log.WithFields(logrus.Fields{"outcome": outcome.Name(), "completed": c.completed}).Info("round ended")
	if c.onEnd != nil {
		c.onEnd(result)
	}

	if outcome == OutcomeWin && c.wellnessDue() {
		c.supersede()
		c.setPhase(PhaseWellness)
		message := Messages[c.rng.Intn(len(Messages))]
		c.log.WithField("message", message).Info("wellness interruption")
		c.wellness.Pause(message)
		return
	}
	c.startRound()
}

func (c *Controller) wellnessDue() bool {
	return c.wellness != nil && c.cfg.WellnessEvery > 0 && c.completed%c.cfg.WellnessEvery == 0
}
