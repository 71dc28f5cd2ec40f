// Package tui renders the portfolio in a terminal. It hosts the splash
// sequence, drives the scroll coordinator from a viewport and wires the hero
// actions to the project list.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/content"
	"github.com/muhammaduzair9889/portfolio/internal/hero"
	"github.com/muhammaduzair9889/portfolio/internal/intro"
	"github.com/muhammaduzair9889/portfolio/internal/page"
	"github.com/muhammaduzair9889/portfolio/internal/projects"
	"github.com/muhammaduzair9889/portfolio/internal/scroll"
	"github.com/muhammaduzair9889/portfolio/internal/signal"
)

// timerMsg carries a due scheduler callback into the update loop.
type timerMsg struct{ f func() }

type Model struct {
	site    *content.Site
	logger  *slog.Logger
	timings intro.Timings

	ctx    context.Context
	cancel context.CancelFunc
	loop   *clock.Loop
	sched  clock.Scheduler

	doc   *document
	coord *scroll.Coordinator
	seq   *intro.Sequence
	frame intro.Frame
	list  *projects.List
	topic *signal.Topic[projects.Filter]
	hero  *hero.Actions
	stops []func()

	vp   viewport.Model
	keys keyMap
	help help.Model

	width, height  int
	splashDone     bool
	menuOpen       bool
	headerScrolled bool
	showToTop      bool
}

type Option func(*Model)

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithScheduler replaces the wall-clock loop; the caller then fires timers.
func WithScheduler(s clock.Scheduler) Option {
	return func(m *Model) {
		m.loop = nil
		m.sched = s
	}
}

func WithSplashTimings(t intro.Timings) Option {
	return func(m *Model) { m.timings = t }
}

func New(site *content.Site, opts ...Option) *Model {
	loop := clock.NewLoop()
	m := &Model{
		site:    site,
		logger:  slog.New(slog.DiscardHandler),
		timings: intro.DefaultTimings(),
		loop:    loop,
		sched:   loop,
		list:    projects.NewList(site.Projects),
		topic:   projects.NewFilterTopic(),
		keys:    newKeyMap(site.Nav),
		help:    help.New(),
		vp:      viewport.New(80, 22),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())

	m.doc = newDocument(m.sched, &m.vp)
	m.coord = scroll.NewCoordinator(m.doc, m.sched)
	m.hero = hero.New(m.coord, m.topic)
	m.seq = intro.New(m.sched, m.finishSplash,
		intro.WithName(site.Owner),
		intro.WithTitle(site.Title),
		intro.WithTimings(m.timings),
		intro.WithDocument(m.doc),
		intro.WithFrameHandler(func(f intro.Frame) { m.frame = f }),
	)
	return m
}

// Run shows the portfolio until the user quits or ctx is cancelled.
func Run(ctx context.Context, site *content.Site, opts ...Option) error {
	m := New(site, opts...)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Close unmounts everything and stops the timer loop.
func (m *Model) Close() {
	m.seq.Unmount()
	m.coord.Close()
	m.doc.stopAnimation()
	for _, stop := range m.stops {
		stop()
	}
	m.stops = nil
	m.cancel()
	if m.loop != nil {
		m.loop.Close()
	}
}

func (m *Model) Init() tea.Cmd {
	m.seq.Mount()
	return m.waitForTimer()
}

func (m *Model) waitForTimer() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	loop, ctx := m.loop, m.ctx
	return func() tea.Msg {
		f, ok := loop.Next(ctx)
		if !ok {
			return nil
		}
		return timerMsg{f: f}
	}
}

// finishSplash runs when the splash timeline completes.
func (m *Model) finishSplash() {
	m.seq.Unmount()
	m.splashDone = true
	m.logger.Debug("splash complete")

	header := m.coord.Observe(scroll.HeaderThreshold, func(s scroll.State) {
		m.headerScrolled = s.PastThreshold
	})
	toTop := m.coord.Observe(scroll.ScrollTopThreshold, func(s scroll.State) {
		m.showToTop = s.PastThreshold
	})
	m.list.OnChange(func(f projects.Filter) {
		m.logger.Debug("project filter changed", "filter", string(f))
		m.reflow()
	})
	m.stops = append(m.stops, header.Release, toTop.Release, m.list.Listen(m.topic))
	m.reflow()
}

// reflow re-renders the page content and resizes the viewport.
func (m *Model) reflow() {
	// the header wraps on narrow terminals; one more row for the status line
	chrome := lipgloss.Height(renderHeader(m.site, m.headerScrolled, m.width)) + 1
	if m.menuOpen {
		chrome += len(m.site.Nav)
	}
	m.vp.Width = m.width
	m.vp.Height = max(1, m.height-chrome)

	body, sections := renderPage(m.site, m.list, m.width)
	m.vp.SetContent(body)
	m.doc.sections = sections
	m.doc.Reflow()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		msg.f()
		return m, m.waitForTimer()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.splashDone {
			m.reflow()
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.Close()
			return m, tea.Quit
		}
		if m.splashDone {
			m.handleKey(msg)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	var rows int
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		rows = -3
	case tea.MouseButtonWheelDown:
		rows = 3
	default:
		return nil
	}

	if msg.Ctrl {
		// ctrl+wheel is the terminal's zoom gesture
		if !m.doc.Dispatch(&page.Event{Type: page.EventGestureStart}) {
			return nil
		}
	}
	if m.splashDone {
		m.doc.ScrollBy(rows)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	for i, b := range m.keys.sections {
		if !key.Matches(msg, b) {
			continue
		}
		id := m.site.Nav[i].Section
		if m.menuOpen {
			m.menuOpen = false
			m.reflow()
			m.coord.ScrollToSectionAfter(id, scroll.SettleDelay)
			return
		}
		m.coord.ScrollToSection(id)
		return
	}

	switch {
	case key.Matches(msg, m.keys.up):
		m.doc.ScrollBy(-1)
	case key.Matches(msg, m.keys.down):
		m.doc.ScrollBy(1)
	case key.Matches(msg, m.keys.pageUp):
		m.doc.ScrollBy(-m.vp.Height)
	case key.Matches(msg, m.keys.pageDown):
		m.doc.ScrollBy(m.vp.Height)
	case key.Matches(msg, m.keys.top):
		m.coord.ScrollToTop()
	case key.Matches(msg, m.keys.menu):
		m.menuOpen = !m.menuOpen
		m.reflow()
	case key.Matches(msg, m.keys.hireMe):
		m.hero.Go(hero.HireMe)
	case key.Matches(msg, m.keys.live):
		m.hero.Go(hero.LiveProjects)
	case key.Matches(msg, m.keys.filter):
		m.list.SetFilter(m.list.Active().Next())
	}
}

func (m *Model) View() string {
	if !m.splashDone {
		return renderSplash(m.frame, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.site, m.headerScrolled, m.width))
	b.WriteString("\n")
	if m.menuOpen {
		b.WriteString(renderMenu(m.site))
		b.WriteString("\n")
	}
	b.WriteString(m.vp.View())
	b.WriteString("\n")

	status := m.help.View(m.keys)
	if m.showToTop {
		status = cursorStyle.Render("↑ top [t]") + "  " + status
	}
	b.WriteString(status)
	return b.String()
}
