// Package scroll derives view flags from the page scroll offset and performs
// programmatic smooth scrolling to named sections.
package scroll

import (
	"math"
	"strings"
	"time"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/page"
)

const (
	// HeaderOffset is the height of the fixed header; section targets land
	// just below it.
	HeaderOffset = 80.0

	HeaderThreshold    = 20.0
	ScrollTopThreshold = 300.0

	// SettleDelay lets layout settle after closing the mobile menu before a
	// section position is read.
	SettleDelay = 100 * time.Millisecond
)

// Element is a resolved section.
type Element interface {
	// Top is the element's top edge relative to the viewport.
	Top() float64
}

// Viewport is the scrollable page. Hosts dispatch page.EventScroll whenever
// ScrollY changes.
type Viewport interface {
	page.EventSource
	ScrollY() float64
	Lookup(id string) (Element, bool)
	ScrollTo(y float64, smooth bool)
}

// State is the scroll offset and whether it is past an observer's threshold.
type State struct {
	OffsetY       float64
	PastThreshold bool
}

// Derive computes the State for offsetY against threshold. Negative offsets
// (overscroll) count as zero.
func Derive(offsetY, threshold float64) State {
	if offsetY < 0 {
		offsetY = 0
	}
	return State{OffsetY: offsetY, PastThreshold: offsetY > threshold}
}

// Coordinator is the single scroll utility shared by every view of a page.
type Coordinator struct {
	vp           Viewport
	sched        clock.Scheduler
	headerOffset float64
	pending      clock.Group
	observers    []*Observer
}

type Option func(*Coordinator)

// WithHeaderOffset overrides HeaderOffset, for hosts measuring in other units.
func WithHeaderOffset(offset float64) Option {
	return func(c *Coordinator) { c.headerOffset = offset }
}

func NewCoordinator(vp Viewport, sched clock.Scheduler, opts ...Option) *Coordinator {
	c := &Coordinator{
		vp:           vp,
		sched:        sched,
		headerOffset: HeaderOffset,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observer is a scroll listener bound to one threshold.
type Observer struct {
	threshold float64
	state     State
	publish   func(State)
	remove    func()
}

// State returns the state computed on the most recent scroll event.
func (o *Observer) State() State {
	return o.state
}

// Release removes the scroll listener. Safe to call more than once.
func (o *Observer) Release() {
	if o.remove != nil {
		o.remove()
		o.remove = nil
	}
}

func (o *Observer) handle(offsetY float64) {
	next := Derive(offsetY, o.threshold)
	changed := next.PastThreshold != o.state.PastThreshold
	o.state = next
	if changed && o.publish != nil {
		o.publish(next)
	}
}

// Observe listens for scroll events for the lifetime of the owning view. The
// state is recomputed on every event; publish is called with the initial
// state and then each time PastThreshold flips.
func (c *Coordinator) Observe(threshold float64, publish func(State)) *Observer {
	o := &Observer{
		threshold: threshold,
		state:     Derive(c.vp.ScrollY(), threshold),
		publish:   publish,
	}
	o.remove = c.vp.AddEventListener(page.EventScroll, func(*page.Event) {
		o.handle(c.vp.ScrollY())
	})
	c.observers = append(c.observers, o)
	if publish != nil {
		publish(o.state)
	}
	return o
}

// TargetOffset returns the scroll offset that places el just below the fixed
// header, never negative.
func (c *Coordinator) TargetOffset(el Element) float64 {
	return math.Max(0, el.Top()+c.vp.ScrollY()-c.headerOffset)
}

// ScrollToSection smooth scrolls to the section named id ("contact" or
// "#contact"). A missing section is not an error: nothing happens and false
// is returned.
func (c *Coordinator) ScrollToSection(id string) bool {
	el, ok := c.vp.Lookup(strings.TrimPrefix(id, "#"))
	if !ok {
		return false
	}
	c.vp.ScrollTo(c.TargetOffset(el), true)
	return true
}

// ScrollToSectionAfter resolves and scrolls to id once delay has passed. The
// section is looked up when the timer fires, not now.
func (c *Coordinator) ScrollToSectionAfter(id string, delay time.Duration) clock.Timer {
	return c.pending.Add(c.sched.AfterFunc(delay, func() {
		c.ScrollToSection(id)
	}))
}

// ScrollToTop smooth scrolls to the top of the page.
func (c *Coordinator) ScrollToTop() {
	c.vp.ScrollTo(0, true)
}

// Close cancels delayed scrolls and releases every observer.
func (c *Coordinator) Close() {
	c.pending.StopAll()
	for _, o := range c.observers {
		o.Release()
	}
	c.observers = nil
}
