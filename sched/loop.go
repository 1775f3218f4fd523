package sched

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Loop is a real-time event loop. Run drains posted callbacks on a single goroutine, so
// callbacks never run concurrently with each other.
type Loop struct {
	events   chan func()
	done     chan struct{}
	stopOnce sync.Once
	logger   logrus.FieldLogger
}

func NewLoop(buffer int, logger logrus.FieldLogger) *Loop {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Loop{
		events: make(chan func(), buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Post queues f to run on the loop. It reports false once the loop is stopped.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- f:
		return true
	case <-l.done:
		return false
	}
}

// Run processes callbacks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("event loop started")
	defer l.logger.Debug("event loop ended")
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case f := <-l.events:
			f()
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

type loopTask struct {
	cancelled atomic.Bool
	stop      chan struct{}
	once      sync.Once
	timer     *time.Timer
}

func (t *loopTask) Cancel() {
	t.cancelled.Store(true)
	t.once.Do(func() {
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.stop != nil {
			close(t.stop)
		}
	})
}

// guard drops callbacks that were already queued when the task got cancelled.
func (t *loopTask) guard(f func()) func() {
	return func() {
		if t.cancelled.Load() {
			return
		}
		f()
	}
}

func (l *Loop) After(d time.Duration, f func()) Task {
	t := &loopTask{}
	run := t.guard(f)
	t.timer = time.AfterFunc(d, func() {
		if !t.cancelled.Load() {
			l.Post(run)
		}
	})
	return t
}

func (l *Loop) Every(d time.Duration, f func()) Task {
	t := &loopTask{stop: make(chan struct{})}
	run := t.guard(f)
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !l.Post(run) {
					return
				}
			case <-t.stop:
				return
			case <-l.done:
				return
			}
		}
	}()
	return t
}
