package intro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/page"
)

func TestSequence_PhaseTimeline(t *testing.T) {
	m := clock.NewManual()
	s := New(m, func() {}, WithTitle("Go"))
	assert.Equal(t, NotStarted, s.Phase())

	s.Mount()
	assert.Equal(t, ShowingName, s.Phase())
	assert.True(t, s.Frame().NameVisible)
	assert.False(t, s.Frame().TitleVisible)

	m.Advance(1499 * time.Millisecond)
	assert.Equal(t, ShowingName, s.Phase())

	m.Advance(time.Millisecond)
	assert.Equal(t, TypingTitle, s.Phase())
	assert.Equal(t, "", s.Frame().Title)
	assert.True(t, s.Frame().CursorVisible)

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, "G", s.Frame().Title)

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, "Go", s.Frame().Title)
	assert.Equal(t, HoldingCursor, s.Phase())

	m.Advance(1000 * time.Millisecond)
	assert.True(t, s.Frame().Fading)
	assert.False(t, s.Frame().CursorVisible)
	assert.Equal(t, HoldingCursor, s.Phase())

	m.Advance(500 * time.Millisecond)
	assert.Equal(t, Complete, s.Phase())
}

func TestSequence_VisibleTextMonotonic(t *testing.T) {
	m := clock.NewManual()
	title := "DevOps Engineer | Cloud & Automation"

	var lengths []int
	s := New(m, func() {}, WithTitle(title), WithFrameHandler(func(f Frame) {
		lengths = append(lengths, len([]rune(f.Title)))
	}))
	s.Mount()
	m.Advance(DefaultTimings().Total(len(title)) + 10*time.Second)

	require.NotEmpty(t, lengths)
	reachedFull := 0
	for i, n := range lengths {
		if i > 0 {
			assert.GreaterOrEqual(t, n, lengths[i-1], "visible text shrank at frame %d", i)
		}
		if n == len(title) && (i == 0 || lengths[i-1] != n) {
			reachedFull++
		}
	}
	assert.Equal(t, 1, reachedFull)
	assert.Equal(t, len(title), lengths[len(lengths)-1])
	assert.Equal(t, len(title), s.Revealed())
}

func TestSequence_CompletesExactlyOnce(t *testing.T) {
	m := clock.NewManual()
	calls := 0
	s := New(m, func() { calls++ }, WithTitle("abc"))

	s.Mount()
	s.Mount()

	total := DefaultTimings().Total(3)
	m.Advance(total - time.Millisecond)
	assert.Zero(t, calls, "completion must not fire before the full timeline")

	m.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)

	m.Advance(time.Minute)
	assert.Equal(t, 1, calls)
	assert.Zero(t, m.Pending())
}

func TestSequence_UnmountBeforeCompletion(t *testing.T) {
	m := clock.NewManual()
	calls := 0
	frames := 0
	s := New(m, func() { calls++ }, WithFrameHandler(func(Frame) { frames++ }))

	s.Mount()
	m.Advance(1600 * time.Millisecond)
	s.Unmount()
	seen := frames

	m.Advance(time.Minute)
	assert.Zero(t, calls)
	assert.Equal(t, seen, frames, "no frame after teardown")
	assert.Zero(t, m.Pending())

	s.Mount()
	assert.Zero(t, m.Pending(), "a torn down sequence cannot be remounted")
}

func TestSequence_EmptyTitle(t *testing.T) {
	m := clock.NewManual()
	calls := 0
	s := New(m, func() { calls++ }, WithTitle(""))
	s.Mount()

	m.Advance(1500 * time.Millisecond)
	assert.Equal(t, HoldingCursor, s.Phase())
	m.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestSequence_CursorBlinks(t *testing.T) {
	m := clock.NewManual()
	s := New(m, func() {}, WithTitle("a long enough title to keep typing"))
	s.Mount()

	m.Advance(1500 * time.Millisecond)
	assert.True(t, s.Frame().CursorVisible)
	m.Advance(530 * time.Millisecond)
	assert.False(t, s.Frame().CursorVisible)
	m.Advance(530 * time.Millisecond)
	assert.True(t, s.Frame().CursorVisible)
	assert.Equal(t, TypingTitle, s.Phase(), "blinking never moves the main sequence")
}

func TestSequence_GestureGuard(t *testing.T) {
	m := clock.NewManual()
	var doc page.Target
	s := New(m, func() {}, WithDocument(&doc))
	s.Mount()

	assert.False(t, doc.Dispatch(&page.Event{Type: page.EventTouchStart, Touches: 2}))
	assert.False(t, doc.Dispatch(&page.Event{Type: page.EventTouchMove, Touches: 3}))
	assert.True(t, doc.Dispatch(&page.Event{Type: page.EventTouchStart, Touches: 1}))
	assert.False(t, doc.Dispatch(&page.Event{Type: page.EventGestureStart}))

	s.Unmount()
	assert.Zero(t, doc.ListenerCount(page.EventTouchStart))
	assert.Zero(t, doc.ListenerCount(page.EventTouchMove))
	assert.Zero(t, doc.ListenerCount(page.EventGestureStart))
	assert.True(t, doc.Dispatch(&page.Event{Type: page.EventGestureStart}))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "typing_title", TypingTitle.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
