// Package projects holds the project records and the filtered list view.
package projects

import (
	"errors"
	"fmt"

	"github.com/muhammaduzair9889/portfolio/internal/signal"
)

type Category string

const (
	CategoryDevOps    Category = "devops"
	CategoryCloud     Category = "cloud"
	CategoryFullStack Category = "fullstack"
)

// Project is a read-only record describing one portfolio entry.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Repo        string   `yaml:"repo,omitempty"`
	Live        string   `yaml:"live,omitempty"`
	IsLive      bool     `yaml:"is_live"`
	Category    Category `yaml:"category"`
}

// Filter narrows the displayed projects.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterLive      Filter = "live"
	FilterDevOps    Filter = "devops"
	FilterCloud     Filter = "cloud"
	FilterFullStack Filter = "fullstack"
)

// FilterOption is a filter button.
type FilterOption struct {
	Label string
	Value Filter
}

// Filters lists the filter buttons in display order.
var Filters = []FilterOption{
	{Label: "All", Value: FilterAll},
	{Label: "Live", Value: FilterLive},
	{Label: "DevOps", Value: FilterDevOps},
	{Label: "Cloud", Value: FilterCloud},
	{Label: "Full Stack", Value: FilterFullStack},
}

var ErrUnknownFilter = errors.New("unknown project filter")

// ParseFilter parses a filter name. The empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, opt := range Filters {
		if string(opt.Value) == s {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Match reports whether p is shown under f.
func (f Filter) Match(p Project) bool {
	switch f {
	case FilterAll:
		return true
	case FilterLive:
		return p.IsLive
	default:
		return Category(f) == p.Category
	}
}

// Label returns the button label for f.
func (f Filter) Label() string {
	for _, opt := range Filters {
		if opt.Value == f {
			return opt.Label
		}
	}
	return string(f)
}

// Next returns the filter after f in display order, wrapping around.
func (f Filter) Next() Filter {
	for i, opt := range Filters {
		if opt.Value == f {
			return Filters[(i+1)%len(Filters)].Value
		}
	}
	return FilterAll
}

// Apply returns the projects in all that match f, preserving order.
func Apply(all []Project, f Filter) []Project {
	out := make([]Project, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterTopicName is the topic the hero uses to switch the list filter.
const FilterTopicName = "filterProjects"

// NewFilterTopic returns the topic carrying filter activations.
func NewFilterTopic() *signal.Topic[Filter] {
	return signal.NewTopic[Filter](FilterTopicName)
}

// List is the project listing with its active filter.
type List struct {
	all      []Project
	active   Filter
	onChange func(Filter)
}

func NewList(all []Project) *List {
	return &List{all: all, active: FilterAll}
}

func (l *List) Active() Filter {
	return l.active
}

// OnChange registers f to be called when the active filter changes.
func (l *List) OnChange(f func(Filter)) {
	l.onChange = f
}

// SetFilter switches the active filter and reports whether it changed.
// Setting the current filter again is a no-op.
func (l *List) SetFilter(f Filter) bool {
	if f == l.active {
		return false
	}
	l.active = f
	if l.onChange != nil {
		l.onChange(f)
	}
	return true
}

// Visible returns the projects shown under the active filter.
func (l *List) Visible() []Project {
	return Apply(l.all, l.active)
}

// Listen applies filters published on topic until the returned func is
// called. Unknown filter values are ignored.
func (l *List) Listen(topic *signal.Topic[Filter]) (stop func()) {
	return topic.Subscribe(func(f Filter) {
		if _, err := ParseFilter(string(f)); err != nil {
			return
		}
		l.SetFilter(f)
	})
}
