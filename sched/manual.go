package sched

import "time"

type entry struct {
	at        time.Duration
	every     time.Duration
	seq       uint64
	f         func()
	cancelled bool
}

func (e *entry) Cancel() {
	e.cancelled = true
}

// Manual is a virtual clock. Nothing runs until Advance is called, and everything runs on
// the goroutine calling Advance.
type Manual struct {
	now     time.Duration
	seq     uint64
	entries []*entry
}

func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) After(d time.Duration, f func()) Task {
	return m.add(d, 0, f)
}

// Every panics when d is not positive.
func (m *Manual) Every(d time.Duration, f func()) Task {
	if d <= 0 {
		panic("sched: non-positive interval")
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, every time.Duration, f func()) *entry {
	if d < 0 {
		d = 0
	}
	m.seq++
	e := &entry{at: m.now + d, every: every, seq: m.seq, f: f}
	m.entries = append(m.entries, e)
	return e
}

// Advance moves the clock forward by d and runs every task that falls due, earliest
// first and in scheduling order for equal times. Tasks scheduled by a callback run in the
// same Advance when they fall due inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		e := m.next(target)
		if e == nil {
			break
		}
		m.now = e.at
		if e.every > 0 {
			e.at += e.every
			m.seq++
			e.seq = m.seq
		} else {
			m.remove(e)
		}
		e.f()
	}
	m.now = target
}

// Pending counts tasks that have not run and are not cancelled.
func (m *Manual) Pending() int {
	n := 0
	for _, e := range m.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

func (m *Manual) next(target time.Duration) *entry {
	var best *entry
	live := m.entries[:0]
	for _, e := range m.entries {
		if e.cancelled {
			continue
		}
		live = append(live, e)
		if e.at > target {
			continue
		}
		if best == nil || e.at < best.at || (e.at == best.at && e.seq < best.seq) {
			best = e
		}
	}
	for i := len(live); i < len(m.entries); i++ {
		m.entries[i] = nil
	}
	m.entries = live
	return best
}

func (m *Manual) remove(e *entry) {
	for i, x := range m.entries {
		if x == e {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}
