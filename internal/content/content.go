// Package content loads the static site content: owner details, about text,
// skills, journey, contact links, downloads and project records.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/muhammaduzair9889/portfolio/internal/projects"
)

//go:embed site.yaml
var siteYAML []byte

type NavItem struct {
	Name    string `yaml:"name"`
	Section string `yaml:"section"`
}

type SkillGroup struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Milestone struct {
	Year        string   `yaml:"year"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type Link struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Download is a static file offered for download. File is relative to the
// assets directory; Filename is the name suggested to the browser.
type Download struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	File     string `yaml:"file"`
	Filename string `yaml:"filename"`
}

type Site struct {
	Owner     string             `yaml:"owner"`
	Title     string             `yaml:"title"`
	Tagline   string             `yaml:"tagline"`
	About     string             `yaml:"about"` // markdown
	Nav       []NavItem          `yaml:"nav"`
	Skills    []SkillGroup       `yaml:"skills"`
	Journey   []Milestone        `yaml:"journey"`
	Contact   []Link             `yaml:"contact"`
	Social    []Link             `yaml:"social"`
	Downloads []Download         `yaml:"downloads"`
	Projects  []projects.Project `yaml:"projects"`
}

var ErrInvalid = errors.New("invalid site content")

// Load parses the embedded site content.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site content.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding site content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Site) validate() error {
	if s.Owner == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalid)
	}

	seen := make(map[string]bool)
	for _, p := range s.Projects {
		if p.ID == "" {
			return fmt.Errorf("%w: project %q has no id", ErrInvalid, p.Title)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate project id %q", ErrInvalid, p.ID)
		}
		seen[p.ID] = true

		switch p.Category {
		case projects.CategoryDevOps, projects.CategoryCloud, projects.CategoryFullStack:
		default:
			return fmt.Errorf("%w: project %q has unknown category %q", ErrInvalid, p.ID, p.Category)
		}
	}

	keys := make(map[string]bool)
	for _, d := range s.Downloads {
		if d.Key == "" || d.File == "" {
			return fmt.Errorf("%w: download needs a key and a file", ErrInvalid)
		}
		if keys[d.Key] {
			return fmt.Errorf("%w: duplicate download %q", ErrInvalid, d.Key)
		}
		keys[d.Key] = true
	}
	return nil
}

// Download returns the download registered under key.
func (s *Site) Download(key string) (Download, bool) {
	for _, d := range s.Downloads {
		if d.Key == key {
			return d, true
		}
	}
	return Download{}, false
}

// AboutHTML renders the about text.
func (s *Site) AboutHTML() (template.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(s.About), &buf); err != nil {
		return "", fmt.Errorf("rendering about: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// AboutParagraphs splits the about text on blank lines, for plain text
// renderers.
func (s *Site) AboutParagraphs() []string {
	var out []string
	for _, para := range bytes.Split([]byte(s.About), []byte("\n\n")) {
		text := bytes.TrimSpace(bytes.ReplaceAll(para, []byte("\n"), []byte(" ")))
		text = bytes.ReplaceAll(text, []byte("**"), nil)
		if len(text) > 0 {
			out = append(out, string(text))
		}
	}
	return out
}
