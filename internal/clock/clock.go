// Package clock provides the timer abstraction used by every timed UI
// sequence. Callbacks never run concurrently with each other: the real
// implementation posts them to a single event loop, the manual one runs them
// from Advance.
package clock

import "time"

// Timer is a pending callback. Stop reports whether the call prevented the
// callback from running.
type Timer interface {
	Stop() bool
}

// Scheduler schedules callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Every calls f each interval until the returned timer is stopped. The next
// tick is armed before f runs, so f may stop the ticker.
func Every(s Scheduler, interval time.Duration, f func()) Timer {
	t := &ticker{}
	var arm func()
	arm = func() {
		t.current = s.AfterFunc(interval, func() {
			if t.stopped {
				return
			}
			arm()
			f()
		})
	}
	arm()
	return t
}

type ticker struct {
	current Timer
	stopped bool
}

func (t *ticker) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.current.Stop()
	return true
}

// Group tracks timers so an owner can cancel all of them at teardown.
type Group struct {
	timers []Timer
}

// Add records t and returns it.
func (g *Group) Add(t Timer) Timer {
	g.timers = append(g.timers, t)
	return t
}

// StopAll stops every tracked timer and forgets them.
func (g *Group) StopAll() {
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
}
