package sched

import (
	"context"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualOrder(t *testing.T) {
	m := NewManual()
	var fired []string

	m.After(3*time.Second, func() { fired = append(fired, "c") })
	m.After(time.Second, func() { fired = append(fired, "a") })
	m.After(time.Second, func() { fired = append(fired, "b") })

	m.Advance(999 * time.Millisecond)
	assert.Empty(t, fired)

	m.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 6*time.Second, m.Now())
	assert.Zero(t, m.Pending())
}

func TestManualEvery(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	task := m.Every(time.Second, func() { at = append(at, m.Now()) })

	m.Advance(3500 * time.Millisecond)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, at)

	task.Cancel()
	m.Advance(10 * time.Second)
	assert.Len(t, at, 3)

	assert.Panics(t, func() { m.Every(0, func() {}) })
}

func TestManualCancelFromCallback(t *testing.T) {
	m := NewManual()
	count := 0
	var task Task
	task = m.Every(time.Second, func() {
		count++
		if count == 2 {
			task.Cancel()
		}
	})

	m.Advance(10 * time.Second)
	assert.Equal(t, 2, count)
}

func TestManualNestedScheduling(t *testing.T) {
	m := NewManual()
	var fired []time.Duration
	m.After(time.Second, func() {
		fired = append(fired, m.Now())
		m.After(time.Second, func() { fired = append(fired, m.Now()) })
		m.After(5*time.Second, func() { fired = append(fired, m.Now()) })
	})

	m.Advance(3 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, fired)
	assert.Equal(t, 1, m.Pending())
}

func TestGroup(t *testing.T) {
	m := NewManual()
	var g Group
	count := 0
	g.Add(m.Every(time.Second, func() { count++ }))
	g.Add(m.After(2*time.Second, func() { count += 10 }))
	assert.Equal(t, 2, g.Len())

	m.Advance(time.Second)
	g.Cancel()
	m.Advance(5 * time.Second)

	assert.Equal(t, 1, count)
	assert.Zero(t, g.Len())
}

func TestLoop(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	loop := NewLoop(16, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	t.Run("post runs on the loop", func(t *testing.T) {
		done := make(chan struct{})
		require.True(t, loop.Post(func() { close(done) }))
		select {
		case <-done:
		case <-ctx.Done():
			t.Fatal("posted callback did not run")
		}
	})

	t.Run("after fires once", func(t *testing.T) {
		done := make(chan struct{})
		loop.After(10*time.Millisecond, func() { close(done) })
		select {
		case <-done:
		case <-ctx.Done():
			t.Fatal("after callback did not run")
		}
	})

	t.Run("cancelled tasks do not run", func(t *testing.T) {
		ran := make(chan struct{}, 1)
		task := loop.After(20*time.Millisecond, func() { ran <- struct{}{} })
		ticker := loop.Every(10*time.Millisecond, func() { ran <- struct{}{} })
		task.Cancel()
		ticker.Cancel()

		select {
		case <-ran:
			t.Fatal("cancelled task ran")
		case <-time.After(60 * time.Millisecond):
		}
	})

	t.Run("every repeats", func(t *testing.T) {
		ticks := make(chan struct{}, 8)
		task := loop.Every(5*time.Millisecond, func() {
			select {
			case ticks <- struct{}{}:
			default:
			}
		})
		defer task.Cancel()
		for i := 0; i < 3; i++ {
			select {
			case <-ticks:
			case <-ctx.Done():
				t.Fatal("every callback did not repeat")
			}
		}
	})

	loop.Stop()
	assert.NoError(t, <-errc)
	assert.False(t, loop.Post(func() {}))
}
