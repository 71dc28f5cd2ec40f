package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/page"
)

type section struct {
	vp  *fakeViewport
	abs float64
}

func (s section) Top() float64 { return s.abs - s.vp.y }

type scrollRequest struct {
	y      float64
	smooth bool
}

type fakeViewport struct {
	page.Target
	y        float64
	sections map[string]float64
	requests []scrollRequest
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{sections: map[string]float64{}}
}

func (v *fakeViewport) ScrollY() float64 { return v.y }

func (v *fakeViewport) Lookup(id string) (Element, bool) {
	abs, ok := v.sections[id]
	if !ok {
		return nil, false
	}
	return section{vp: v, abs: abs}, true
}

func (v *fakeViewport) ScrollTo(y float64, smooth bool) {
	v.requests = append(v.requests, scrollRequest{y: y, smooth: smooth})
}

func (v *fakeViewport) scroll(y float64) {
	v.y = y
	v.Dispatch(&page.Event{Type: page.EventScroll})
}

func TestDerive(t *testing.T) {
	assert.Equal(t, State{OffsetY: 20, PastThreshold: false}, Derive(20, HeaderThreshold))
	assert.Equal(t, State{OffsetY: 21, PastThreshold: true}, Derive(21, HeaderThreshold))
	assert.Equal(t, State{OffsetY: 0}, Derive(-15, HeaderThreshold))
}

func TestObserve_IndependentThresholds(t *testing.T) {
	vp := newFakeViewport()
	c := NewCoordinator(vp, clock.NewManual())

	var header, toTop []bool
	c.Observe(HeaderThreshold, func(s State) { header = append(header, s.PastThreshold) })
	c.Observe(ScrollTopThreshold, func(s State) { toTop = append(toTop, s.PastThreshold) })

	for _, y := range []float64{5, 20, 21, 150, 300, 301, 500, 299, 10} {
		vp.scroll(y)
	}

	assert.Equal(t, []bool{false, true, false}, header)
	assert.Equal(t, []bool{false, true, false}, toTop)
}

func TestObserve_StateTracksEveryEvent(t *testing.T) {
	vp := newFakeViewport()
	c := NewCoordinator(vp, clock.NewManual())
	o := c.Observe(HeaderThreshold, nil)

	vp.scroll(12)
	assert.Equal(t, State{OffsetY: 12}, o.State())
	vp.scroll(40)
	assert.Equal(t, State{OffsetY: 40, PastThreshold: true}, o.State())

	o.Release()
	o.Release()
	vp.scroll(0)
	assert.Equal(t, 40.0, o.State().OffsetY, "released observers stop tracking")
	assert.Zero(t, vp.ListenerCount(page.EventScroll))
}

func TestObserve_InitialStateFromCurrentOffset(t *testing.T) {
	vp := newFakeViewport()
	vp.y = 450
	c := NewCoordinator(vp, clock.NewManual())

	var got []State
	c.Observe(ScrollTopThreshold, func(s State) { got = append(got, s) })
	require.Len(t, got, 1)
	assert.True(t, got[0].PastThreshold)
}

func TestScrollToSection_TargetOffset(t *testing.T) {
	tests := []struct {
		name    string
		abs     float64
		scrollY float64
		want    float64
	}{
		{"below the fold", 1200, 0, 1120},
		{"already scrolled", 1200, 500, 1120},
		{"near top clamps to zero", 40, 0, 0},
		{"section above viewport", 300, 900, 220},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := newFakeViewport()
			vp.y = tt.scrollY
			vp.sections["projects"] = tt.abs
			c := NewCoordinator(vp, clock.NewManual())

			el, _ := vp.Lookup("projects")
			top := el.Top()
			assert.True(t, c.ScrollToSection("#projects"))
			require.Len(t, vp.requests, 1)
			assert.Equal(t, max(0, top+tt.scrollY-HeaderOffset), vp.requests[0].y)
			assert.Equal(t, tt.want, vp.requests[0].y)
			assert.True(t, vp.requests[0].smooth)
		})
	}
}

func TestScrollToSection_MissingIsNoop(t *testing.T) {
	vp := newFakeViewport()
	vp.y = 250
	c := NewCoordinator(vp, clock.NewManual())

	assert.NotPanics(t, func() {
		assert.False(t, c.ScrollToSection("#contact"))
	})
	assert.Empty(t, vp.requests)
	assert.Equal(t, 250.0, vp.ScrollY())
}

func TestScrollToSectionAfter_ResolvesAfterSettle(t *testing.T) {
	vp := newFakeViewport()
	m := clock.NewManual()
	c := NewCoordinator(vp, m)

	c.ScrollToSectionAfter("contact", SettleDelay)
	vp.sections["contact"] = 2000

	m.Advance(SettleDelay - time.Millisecond)
	assert.Empty(t, vp.requests)

	m.Advance(time.Millisecond)
	require.Len(t, vp.requests, 1)
	assert.Equal(t, 1920.0, vp.requests[0].y)
}

func TestClose_CancelsPendingScrolls(t *testing.T) {
	vp := newFakeViewport()
	vp.sections["skills"] = 900
	m := clock.NewManual()
	c := NewCoordinator(vp, m)
	c.Observe(HeaderThreshold, nil)

	c.ScrollToSectionAfter("skills", SettleDelay)
	c.Close()
	m.Advance(time.Second)

	assert.Empty(t, vp.requests)
	assert.Zero(t, vp.ListenerCount(page.EventScroll))
}

func TestScrollToTop(t *testing.T) {
	vp := newFakeViewport()
	vp.y = 800
	NewCoordinator(vp, clock.NewManual()).ScrollToTop()

	assert.Equal(t, []scrollRequest{{y: 0, smooth: true}}, vp.requests)
}

func TestWithHeaderOffset(t *testing.T) {
	vp := newFakeViewport()
	vp.sections["about"] = 30
	c := NewCoordinator(vp, clock.NewManual(), WithHeaderOffset(4))

	c.ScrollToSection("about")
	assert.Equal(t, 26.0, vp.requests[0].y)
}
