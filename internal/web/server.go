// Package web serves the portfolio page with gin.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammaduzair9889/portfolio/internal/content"
	"github.com/muhammaduzair9889/portfolio/internal/intro"
	"github.com/muhammaduzair9889/portfolio/internal/projects"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	// contactURL allows the tel: links of the static contact list.
	"contactURL": func(s string) template.URL { return template.URL(s) },
}

type Server struct {
	site      *content.Site
	about     template.HTML
	assetsDir string
	logger    *slog.Logger
	splash    intro.Timings

	contactDelay time.Duration
}

type Option func(*Server)

// WithSplashTimings overrides the timeline streamed by /splash.
func WithSplashTimings(t intro.Timings) Option {
	return func(s *Server) { s.splash = t }
}

// New builds the gin engine serving site. Downloads and /assets are read
// from assetsDir.
func New(site *content.Site, assetsDir string, logger *slog.Logger, opts ...Option) (*gin.Engine, error) {
	about, err := site.AboutHTML()
	if err != nil {
		return nil, err
	}
	s := &Server{
		site:      site,
		about:     about,
		assetsDir: assetsDir,
		logger:    logger,
		splash:    intro.DefaultTimings(),

		contactDelay: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(logger))
	r.SetHTMLTemplate(tmpl)
	r.Static("/assets", assetsDir)

	r.GET("/", s.index)
	r.GET("/projects", s.projectGrid)
	r.GET("/splash", s.streamSplash)
	r.GET("/download/:key", s.download)
	r.POST("/contact", s.contact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, nil
}

// projectView is the data behind the project grid fragment.
type projectView struct {
	Active  projects.Filter
	Filters []projects.FilterOption
	Items   []projects.Project
}

func (s *Server) projectView(f projects.Filter) projectView {
	return projectView{
		Active:  f,
		Filters: projects.Filters,
		Items:   projects.Apply(s.site.Projects, f),
	}
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":     s.site,
		"about":    s.about,
		"projects": s.projectView(projects.FilterAll),
		"splash":   c.Query("splash") != "off",
	})
}

// projectGrid returns the filtered project grid for HTMX swaps.
func (s *Server) projectGrid(c *gin.Context) {
	f, err := projects.ParseFilter(c.Query("filter"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"error": "No such project filter.",
		})
		return
	}
	c.HTML(http.StatusOK, "projects.html", s.projectView(f))
}

func (s *Server) download(c *gin.Context) {
	d, ok := s.site.Download(c.Param("key"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Download not found."})
		return
	}

	path := filepath.Join(s.assetsDir, d.File)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Error("stat download", "file", path, "error", err)
		}
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Download not available."})
		return
	}
	c.FileAttachment(path, d.Filename)
}
