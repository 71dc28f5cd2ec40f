package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/page"
	"github.com/muhammaduzair9889/portfolio/internal/scroll"
)

const (
	// rowHeight converts terminal rows to the pixel units the scroll
	// thresholds are expressed in.
	rowHeight = 20.0

	scrollFrame = 16 * time.Millisecond
)

// document is the terminal page: a viewport over the rendered sections. It
// satisfies scroll.Viewport with offsets in pixels.
type document struct {
	page.Target

	sched    clock.Scheduler
	vp       *viewport.Model
	y        float64
	sections map[string]int // first row of each section
	anim     clock.Timer
}

func newDocument(sched clock.Scheduler, vp *viewport.Model) *document {
	return &document{sched: sched, vp: vp, sections: map[string]int{}}
}

type sectionElement struct {
	d   *document
	row int
}

func (e sectionElement) Top() float64 {
	return float64(e.row)*rowHeight - e.d.y
}

func (d *document) ScrollY() float64 {
	return d.y
}

func (d *document) Lookup(id string) (scroll.Element, bool) {
	row, ok := d.sections[id]
	if !ok {
		return nil, false
	}
	return sectionElement{d: d, row: row}, true
}

// ScrollTo moves to y. A smooth scroll eases toward the target one frame at
// a time and is interrupted by any later scroll.
func (d *document) ScrollTo(y float64, smooth bool) {
	d.stopAnimation()
	target := d.clamp(y)
	if !smooth {
		d.set(target)
		return
	}
	d.anim = clock.Every(d.sched, scrollFrame, func() {
		// content may reflow mid-animation
		goal := d.clamp(target)
		remaining := goal - d.y
		if math.Abs(remaining) <= rowHeight/2 {
			d.stopAnimation()
			d.set(goal)
			return
		}
		d.set(d.y + remaining/3)
	})
}

// ScrollBy moves by rows immediately.
func (d *document) ScrollBy(rows int) {
	d.stopAnimation()
	d.set(d.clamp(d.y + float64(rows)*rowHeight))
}

// Reflow re-reads the viewport bounds after content or size changed.
func (d *document) Reflow() {
	if clamped := d.clamp(d.y); clamped != d.y {
		d.set(clamped)
		return
	}
	d.vp.SetYOffset(d.row())
}

func (d *document) stopAnimation() {
	if d.anim != nil {
		d.anim.Stop()
		d.anim = nil
	}
}

func (d *document) maxY() float64 {
	rows := d.vp.TotalLineCount() - d.vp.Height
	if rows < 0 {
		rows = 0
	}
	return float64(rows) * rowHeight
}

func (d *document) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, d.maxY()))
}

func (d *document) row() int {
	return int(math.Round(d.y / rowHeight))
}

func (d *document) set(y float64) {
	d.y = y
	d.vp.SetYOffset(d.row())
	d.Dispatch(&page.Event{Type: page.EventScroll})
}
