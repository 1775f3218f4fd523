package round

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/kalra1569/MazeSwiper/model"
	"github.com/kalra1569/MazeSwiper/sched"
)

// slide animates a move whose destination is already known. Every frame advances the
// tween; onChange sees the new progress and onFinish runs once when it reaches 1.
type slide struct {
	from, to model.Cell
	tween    *gween.Tween
	frame    time.Duration
	progress float64
	onChange func(progress float64)
	onFinish []func()
	task     sched.Task
	done     bool
}

func newSlide(from, to model.Cell, duration, frame time.Duration) *slide {
	return &slide{
		from:  from,
		to:    to,
		tween: gween.New(0, 1, float32(duration.Seconds()), ease.OutQuad),
		frame: frame,
	}
}

func (s *slide) addOnFinish(f func()) {
	s.onFinish = append(s.onFinish, f)
}

func (s *slide) step() {
	if s.done {
		return
	}
	current, finished := s.tween.Update(float32(s.frame.Seconds()))
	s.progress = clamp01(float64(current))
	if finished {
		s.progress = 1
	}
	if s.onChange != nil {
		s.onChange(s.progress)
	}
	if finished {
		s.done = true
		for _, f := range s.onFinish {
			f()
		}
	}
}

// position interpolates pixel coordinates between the centres of from and to.
func (s *slide) position(size float64) (float64, float64) {
	x0, y0 := model.Center(s.from, size)
	x1, y1 := model.Center(s.to, size)
	return x0 + (x1-x0)*s.progress, y0 + (y1-y0)*s.progress
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
