package clock

import (
	"sort"
	"time"
)

// Manual is a logical clock. Time only moves on Advance, and due callbacks run
// synchronously in deadline order (ties in scheduling order).
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	m   *Manual
	due time.Duration
	seq int
	f   func()
}

func (t *manualTimer) Stop() bool {
	return t.m.remove(t)
}

// NewManual returns a logical clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed logical time.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now + d, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, running every callback that becomes
// due, including callbacks scheduled by other callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.earliest()
		if next == nil || next.due > target {
			break
		}
		m.remove(next)
		m.now = next.due
		next.f()
	}
	m.now = target
}

// Pending returns the number of scheduled callbacks.
func (m *Manual) Pending() int {
	return len(m.timers)
}

func (m *Manual) earliest() *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	return m.timers[0]
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, cur := range m.timers {
		if cur == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}
