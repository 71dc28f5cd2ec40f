// Package intro implements the splash sequence shown once per page load: the
// owner's name appears, the title is typed out character by character, the
// cursor holds, and the host is told it can unmount the splash.
//
// A Sequence is driven entirely by its clock.Scheduler. With clock.Manual the
// whole sequence can be stepped without waiting on the wall clock.
package intro

import (
	"time"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/page"
)

// Phase is the position of a Sequence in the splash timeline. Phases only move
// forward.
type Phase int

const (
	NotStarted Phase = iota
	ShowingName
	TypingTitle
	HoldingCursor
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case ShowingName:
		return "showing_name"
	case TypingTitle:
		return "typing_title"
	case HoldingCursor:
		return "holding_cursor"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

const (
	DefaultName  = "Muhammad Uzair"
	DefaultTitle = "DevOps Engineer | Cloud & Automation"
)

// Timings holds the delays of the splash timeline.
type Timings struct {
	NameDelay     time.Duration // mount until typing starts
	TypeInterval  time.Duration // one character per interval
	HoldPause     time.Duration // full title shown with cursor
	FadeDelay     time.Duration // cursor hidden until completion
	BlinkInterval time.Duration // cursor toggle period
}

// DefaultTimings returns the timeline used by the site.
func DefaultTimings() Timings {
	return Timings{
		NameDelay:     1500 * time.Millisecond,
		TypeInterval:  50 * time.Millisecond,
		HoldPause:     1000 * time.Millisecond,
		FadeDelay:     500 * time.Millisecond,
		BlinkInterval: 530 * time.Millisecond,
	}
}

// Total returns how long a sequence over a title of n characters takes from
// mount to completion.
func (t Timings) Total(n int) time.Duration {
	return t.NameDelay + time.Duration(n)*t.TypeInterval + t.HoldPause + t.FadeDelay
}

// Frame is everything a renderer needs to draw the splash.
type Frame struct {
	Phase         Phase
	Name          string
	NameVisible   bool
	Title         string // revealed prefix of the full title
	TitleVisible  bool
	CursorVisible bool
	Fading        bool
}

// Option configures a Sequence.
type Option func(*Sequence)

func WithName(name string) Option {
	return func(s *Sequence) { s.name = name }
}

func WithTitle(title string) Option {
	return func(s *Sequence) { s.title = []rune(title) }
}

func WithTimings(t Timings) Option {
	return func(s *Sequence) { s.timings = t }
}

// WithDocument installs the multi-touch guard on doc while mounted.
func WithDocument(doc page.EventSource) Option {
	return func(s *Sequence) { s.doc = doc }
}

// WithFrameHandler registers f to be called after every visible change.
func WithFrameHandler(f func(Frame)) Option {
	return func(s *Sequence) { s.onFrame = f }
}

// Sequence is one mount of the splash. It is not safe for concurrent use;
// every method and timer callback must run on the scheduler's loop.
type Sequence struct {
	sched      clock.Scheduler
	onComplete func()
	onFrame    func(Frame)
	doc        page.EventSource
	timings    Timings
	name       string
	title      []rune

	phase     Phase
	revealed  int
	cursor    bool
	fading    bool
	completed bool
	mounted   bool
	torndown  bool

	timers clock.Group
	blink  clock.Timer
	guards []func()
}

// New returns an unmounted sequence. onComplete is called exactly once, after
// the whole timeline has played, and never if the sequence is unmounted first.
func New(sched clock.Scheduler, onComplete func(), opts ...Option) *Sequence {
	s := &Sequence{
		sched:      sched,
		onComplete: onComplete,
		timings:    DefaultTimings(),
		name:       DefaultName,
		title:      []rune(DefaultTitle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount starts the timeline. Mounting again, or after Unmount, does nothing.
func (s *Sequence) Mount() {
	if s.mounted || s.torndown {
		return
	}
	s.mounted = true
	s.installGuards()

	s.phase = ShowingName
	s.emit()
	s.timers.Add(s.sched.AfterFunc(s.timings.NameDelay, s.startTyping))
}

// Unmount cancels every pending timer and removes the document listeners.
// Nothing fires afterwards.
func (s *Sequence) Unmount() {
	if s.torndown {
		return
	}
	s.torndown = true
	s.timers.StopAll()
	for _, remove := range s.guards {
		remove()
	}
	s.guards = nil
}

func (s *Sequence) Phase() Phase {
	return s.phase
}

// Revealed returns how many title characters are visible.
func (s *Sequence) Revealed() int {
	return s.revealed
}

func (s *Sequence) Frame() Frame {
	return Frame{
		Phase:         s.phase,
		Name:          s.name,
		NameVisible:   s.phase >= ShowingName,
		Title:         string(s.title[:s.revealed]),
		TitleVisible:  s.phase >= TypingTitle,
		CursorVisible: s.cursor,
		Fading:        s.fading,
	}
}

func (s *Sequence) startTyping() {
	s.phase = TypingTitle
	s.cursor = true
	s.blink = s.timers.Add(clock.Every(s.sched, s.timings.BlinkInterval, func() {
		s.cursor = !s.cursor
		s.emit()
	}))
	s.emit()

	if len(s.title) == 0 {
		s.hold()
		return
	}

	var typing clock.Timer
	typing = s.timers.Add(clock.Every(s.sched, s.timings.TypeInterval, func() {
		s.revealed++
		s.emit()
		if s.revealed == len(s.title) {
			typing.Stop()
			s.hold()
		}
	}))
}

func (s *Sequence) hold() {
	s.phase = HoldingCursor
	s.emit()
	s.timers.Add(s.sched.AfterFunc(s.timings.HoldPause, s.fade))
}

func (s *Sequence) fade() {
	s.blink.Stop()
	s.cursor = false
	s.fading = true
	s.emit()
	s.timers.Add(s.sched.AfterFunc(s.timings.FadeDelay, s.complete))
}

func (s *Sequence) complete() {
	if s.completed {
		return
	}
	s.completed = true
	s.phase = Complete
	s.emit()
	if s.onComplete != nil {
		s.onComplete()
	}
}

func (s *Sequence) emit() {
	if s.onFrame != nil {
		s.onFrame(s.Frame())
	}
}

func (s *Sequence) installGuards() {
	if s.doc == nil {
		return
	}
	preventMultiTouch := func(e *page.Event) {
		if e.Touches > 1 {
			e.PreventDefault()
		}
	}
	s.guards = append(s.guards,
		s.doc.AddEventListener(page.EventTouchStart, preventMultiTouch),
		s.doc.AddEventListener(page.EventTouchMove, preventMultiTouch),
		s.doc.AddEventListener(page.EventGestureStart, func(e *page.Event) { e.PreventDefault() }),
	)
}
