package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalra1569/MazeSwiper/model"
)

type stubPointer struct {
	x, y     int
	released bool
}

func (f *stubPointer) Position() (int, int) { return f.x, f.y }
func (f *stubPointer) Released() bool { return f.released }

func TestStroke(t *testing.T) {
	t.Run("swipe", func(t *testing.T) {
		src := &stubPointer{x: 100, y: 100}
		s := NewStroke(src, 16)

		src.x, src.y = 110, 104
		s.Update()
		assert.False(t, s.IsReleased())

		src.x, src.y = 90, 130
		s.Update()
		assert.True(t, s.IsReleased())
		assert.False(t, s.IsTap())
		dir, ok := s.Swipe()
		assert.True(t, ok)
		assert.Equal(t, model.Down, dir)
	})

	t.Run("tap", func(t *testing.T) {
		src := &stubPointer{x: 5, y: 5}
		s := NewStroke(src, 16)
		src.x = 9
		s.Update()
		src.released = true
		s.Update()
		assert.True(t, s.IsTap())
		_, ok := s.Swipe()
		assert.False(t, ok)
	})
}
