package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a wall-clock Scheduler whose callbacks are executed one at a time by
// whoever drains it, either Run or repeated calls to Next.
type Loop struct {
	queue     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop returns an open loop.
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

type loopTimer struct {
	state atomic.Int32
	t     *time.Timer
}

func (lt *loopTimer) Stop() bool {
	if !lt.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	lt.t.Stop()
	return true
}

// AfterFunc schedules f on the loop after d. A timer stopped after its delay
// elapsed but before the loop picked it up still does not run.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.state.CompareAndSwap(timerPending, timerFired) {
				f()
			}
		})
	})
	return lt
}

// Post queues f for execution on the loop. It reports false if the loop was
// closed first.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- f:
		return true
	case <-l.done:
		return false
	}
}

// Next blocks until a callback is queued and returns it without running it.
// ok is false once the loop is closed or ctx is done.
func (l *Loop) Next(ctx context.Context) (f func(), ok bool) {
	select {
	case <-l.done:
		return nil, false
	case <-ctx.Done():
		return nil, false
	default:
	}
	select {
	case f = <-l.queue:
		return f, true
	case <-l.done:
		return nil, false
	case <-ctx.Done():
		return nil, false
	}
}

// Run executes queued callbacks until ctx is done or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		f, ok := l.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		}
		f()
	}
}

// Close stops the loop. Callbacks queued after Close are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}
