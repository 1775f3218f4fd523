// Package sched runs delayed and repeating callbacks on a single logical event loop.
//
// Manual is driven explicitly, one Advance per frame or per test step. Loop runs callbacks
// in real time on one goroutine. Both guarantee that a cancelled task never runs afterwards.
package sched

import "time"

// Task is a scheduled callback that can be cancelled.
type Task interface {
	Cancel()
}

// Scheduler schedules callbacks on the caller's event loop.
type Scheduler interface {
	// After runs f once, d from now.
	After(d time.Duration, f func()) Task

	// Every runs f every d, first d from now, until cancelled.
	Every(d time.Duration, f func()) Task
}

// Group cancels a set of tasks together.
type Group struct {
	tasks []Task
}

func (g *Group) Add(t Task) Task {
	g.tasks = append(g.tasks, t)
	return t
}

// Cancel cancels every task added since the last Cancel.
func (g *Group) Cancel() {
	for _, t := range g.tasks {
		t.Cancel()
	}
	g.tasks = nil
}

func (g *Group) Len() int {
	return len(g.tasks)
}
