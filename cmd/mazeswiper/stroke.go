package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/kalra1569/MazeSwiper/model"
)

// pointer is the device a Stroke follows.
type pointer interface {
	Position() (int, int)
	Released() bool
}

type mousePointer struct{}

func (mousePointer) Position() (int, int) { return ebiten.CursorPosition() }
func (mousePointer) Released() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// touchPointer follows one finger by its touch ID.
type touchPointer struct {
	id int
}

func (t touchPointer) Position() (int, int) { return ebiten.TouchPosition(t.id) }
func (t touchPointer) Released() bool { return inpututil.IsTouchJustReleased(t.id) }

// Stroke follows one drag. It ends as a swipe as soon as it travels further than
// threshold, or as a tap when released before that.
type Stroke struct {
	source    pointer
	threshold int

	initX, initY       int // where the drag began
	currentX, currentY int

	released bool
	swiped   bool
}

func NewStroke(source pointer, threshold int) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:    source,
		threshold: threshold,
		initX:     cx,
		initY:     cy,
		currentX:  cx,
		currentY:  cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.Released() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
	dx, dy := s.PositionDiff()
	if abs(dx) > s.threshold || abs(dy) > s.threshold {
		s.released = true
		s.swiped = true
	}
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) PositionDiff() (int, int) {
	return s.currentX - s.initX, s.currentY - s.initY
}

// Swipe returns the direction of a finished swipe. A stroke that ended as a tap has none.
func (s *Stroke) Swipe() (model.Direction, bool) {
	if !s.swiped {
		return 0, false
	}
	dx, dy := s.PositionDiff()
	return model.SwipeDirection(float64(dx), float64(dy))
}

// IsTap reports a stroke released without travelling far enough to swipe.
func (s *Stroke) IsTap() bool {
	return s.released && !s.swiped
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
