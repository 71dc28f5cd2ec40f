package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/muhammaduzair9889/portfolio/internal/content"
)

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	top      key.Binding
	menu     key.Binding
	hireMe   key.Binding
	live     key.Binding
	filter   key.Binding
	quit     key.Binding
	sections []key.Binding
}

func newKeyMap(nav []content.NavItem) keyMap {
	k := keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		top: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "top"),
		),
		menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		hireMe: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hire me"),
		),
		live: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "live projects"),
		),
		filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	for i, item := range nav {
		if i >= 9 {
			break
		}
		n := fmt.Sprint(i + 1)
		k.sections = append(k.sections, key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, item.Name),
		))
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.down, k.up, k.menu, k.live, k.hireMe, k.filter, k.top, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown, k.top},
		k.sections,
		{k.menu, k.hireMe, k.live, k.filter, k.quit},
	}
}
