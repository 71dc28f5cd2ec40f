package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muhammaduzair9889/portfolio/internal/content"
	"github.com/muhammaduzair9889/portfolio/internal/intro"
	"github.com/muhammaduzair9889/portfolio/internal/projects"
)

var (
	accent = lipgloss.Color("#10B981")
	muted  = lipgloss.Color("#9CA3AF")

	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366F1"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	tagStyle      = lipgloss.NewStyle().Foreground(accent)
	activeStyle   = lipgloss.NewStyle().Reverse(true)
	liveBadge     = lipgloss.NewStyle().Foreground(accent).Bold(true)
	headerStyle   = lipgloss.NewStyle().Padding(0, 1)
	scrolledStyle = headerStyle.Background(lipgloss.Color("#1F2937"))
	cursorStyle   = lipgloss.NewStyle().Foreground(accent)
)

// pageBuilder accumulates rendered lines and remembers where each section
// starts.
type pageBuilder struct {
	width    int
	lines    []string
	sections map[string]int
}

func (b *pageBuilder) section(id, heading string) {
	if len(b.lines) > 0 {
		b.blank()
	}
	b.sections[id] = len(b.lines)
	b.add(headingStyle.Render(heading))
	b.blank()
}

func (b *pageBuilder) add(block string) {
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

func (b *pageBuilder) wrap(style lipgloss.Style, text string) {
	b.add(style.Width(b.width).Render(text))
}

func (b *pageBuilder) blank() {
	b.lines = append(b.lines, "")
}

func tags(items []string) string {
	return tagStyle.Render(strings.Join(items, " · "))
}

// renderPage lays out every section of site for a terminal width.
func renderPage(site *content.Site, list *projects.List, width int) (string, map[string]int) {
	if width < 20 {
		width = 20
	}
	b := &pageBuilder{width: width, sections: map[string]int{}}
	plain := lipgloss.NewStyle()

	b.section("home", site.Owner)
	b.wrap(titleStyle, site.Title)
	b.wrap(mutedStyle, site.Tagline)
	b.blank()
	b.add(mutedStyle.Render("[h] Hire Me   [l] Live Projects"))

	b.section("about", "About Me")
	for i, para := range site.AboutParagraphs() {
		if i > 0 {
			b.blank()
		}
		b.wrap(plain, para)
	}

	b.section("skills", "Skills")
	for _, group := range site.Skills {
		b.add(titleStyle.Render(group.Name))
		b.wrap(plain, tags(group.Skills))
	}

	b.section("projects", "Projects")
	var filters []string
	for _, opt := range projects.Filters {
		label := " " + opt.Label + " "
		if opt.Value == list.Active() {
			label = activeStyle.Render(label)
		}
		filters = append(filters, label)
	}
	b.add(strings.Join(filters, " "))
	b.blank()
	visible := list.Visible()
	if len(visible) == 0 {
		b.add(mutedStyle.Render("No projects found for this filter."))
	}
	for i, p := range visible {
		if i > 0 {
			b.blank()
		}
		title := titleStyle.Render(p.Title)
		if p.IsLive {
			title += " " + liveBadge.Render("● live")
		}
		b.add(title)
		b.wrap(mutedStyle, p.Description)
		b.wrap(plain, tags(p.Tech))
		if p.Repo != "" {
			b.add("code: " + p.Repo)
		}
		if p.Live != "" {
			b.add("demo: " + p.Live)
		}
	}

	b.section("journey", "My Journey")
	for _, m := range site.Journey {
		b.add(fmt.Sprintf("%s  %s", tagStyle.Render(m.Year), titleStyle.Render(m.Title)))
		b.wrap(mutedStyle, m.Description)
	}

	b.section("resume", "Resume")
	for _, d := range site.Downloads {
		b.add(fmt.Sprintf("%s: /download/%s (%s)", d.Label, d.Key, d.Filename))
	}

	b.section("contact", "Get In Touch")
	for _, l := range append(append([]content.Link(nil), site.Contact...), site.Social...) {
		b.add(fmt.Sprintf("%-10s %s", l.Name, l.Href))
	}
	b.blank()

	return strings.Join(b.lines, "\n"), b.sections
}

// renderSplash draws one splash frame centred in the terminal.
func renderSplash(f intro.Frame, width, height int) string {
	var lines []string
	if f.NameVisible {
		lines = append(lines, titleStyle.Render(f.Name))
	}
	if f.TitleVisible {
		title := f.Title
		if f.CursorVisible {
			title += cursorStyle.Render("|")
		} else {
			title += " "
		}
		lines = append(lines, mutedStyle.Render(title))
	}
	body := strings.Join(lines, "\n")
	if f.Fading {
		body = mutedStyle.Faint(true).Render(body)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func renderHeader(site *content.Site, scrolled bool, width int) string {
	var names []string
	for i, n := range site.Nav {
		names = append(names, fmt.Sprintf("%d %s", i+1, n.Name))
	}
	style := headerStyle
	if scrolled {
		style = scrolledStyle
	}
	brand := titleStyle.Render(site.Owner)
	return style.Width(width).Render(brand + "  " + mutedStyle.Render(strings.Join(names, "  ")))
}

func renderMenu(site *content.Site) string {
	var lines []string
	for i, n := range site.Nav {
		lines = append(lines, fmt.Sprintf("  [%d] %s", i+1, n.Name))
	}
	return strings.Join(lines, "\n")
}
