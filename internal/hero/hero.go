// Package hero implements the call-to-action buttons of the hero section.
package hero

import (
	"github.com/muhammaduzair9889/portfolio/internal/projects"
	"github.com/muhammaduzair9889/portfolio/internal/scroll"
	"github.com/muhammaduzair9889/portfolio/internal/signal"
)

// Navigation is a one-shot request to move to a section, optionally
// switching the project filter on the way.
type Navigation struct {
	Section string
	Filter  projects.Filter // empty leaves the filter alone
}

var (
	HireMe       = Navigation{Section: "contact"}
	LiveProjects = Navigation{Section: "projects", Filter: projects.FilterLive}
)

type Actions struct {
	scroll  *scroll.Coordinator
	filters *signal.Topic[projects.Filter]
}

func New(c *scroll.Coordinator, filters *signal.Topic[projects.Filter]) *Actions {
	return &Actions{scroll: c, filters: filters}
}

// Go scrolls to nav.Section and publishes nav.Filter. It returns how many
// listeners received the filter; the section may be missing, in which case
// nothing scrolls.
func (a *Actions) Go(nav Navigation) int {
	a.scroll.ScrollToSection(nav.Section)
	if nav.Filter == "" {
		return 0
	}
	return a.filters.Publish(nav.Filter)
}
