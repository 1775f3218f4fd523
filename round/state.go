package round

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kalra1569/MazeSwiper/model"
)

type Phase int

const (
	PhaseIdle Phase = iota + 1
	PhaseGoalHidden
	PhaseGoalVisible
	PhaseWellness
)

func (p Phase) Name() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseGoalHidden:
		return "GOAL_HIDDEN"
	case PhaseGoalVisible:
		return "GOAL_VISIBLE"
	case PhaseWellness:
		return "WELLNESS"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

// Playing reports whether swipes are accepted in this phase.
func (p Phase) Playing() bool {
	return p == PhaseGoalHidden || p == PhaseGoalVisible
}

type Outcome int

const (
	OutcomeWin Outcome = iota + 1
	OutcomeTimeout
)

func (o Outcome) Name() string {
	switch o {
	case OutcomeWin:
		return "WIN"
	case OutcomeTimeout:
		return "TIMEOUT"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Result describes a finished round.
type Result struct {
	RoundID   uuid.UUID
	Outcome   Outcome
	Completed int // rounds won so far, this one included
	Remaining int // countdown units left when the round ended
}

// Snapshot is what a renderer reads after each event.
type Snapshot struct {
	RoundID         uuid.UUID
	Phase           Phase
	Grid            *model.Grid // shared, never modified
	Player          model.Token
	Goal            model.Token
	GoalVisible     bool
	TimeRemaining   int
	RoundsCompleted int
	Moving          bool
	SlideProgress   float64
	HardMode        bool
}
