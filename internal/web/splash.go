package web

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammaduzair9889/portfolio/internal/clock"
	"github.com/muhammaduzair9889/portfolio/internal/intro"
)

type splashFrame struct {
	Phase  string `json:"phase"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Cursor bool   `json:"cursor"`
	Fading bool   `json:"fading"`
}

// streamSplash plays the splash sequence as server-sent events: one "frame"
// event per visible change and a final "complete". The sequence runs on the
// request goroutine and is unmounted when the client goes away.
func (s *Server) streamSplash(c *gin.Context) {
	loop := clock.NewLoop()
	defer loop.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	seq := intro.New(loop,
		func() {
			c.SSEvent("complete", gin.H{"phase": intro.Complete.String()})
			c.Writer.Flush()
			loop.Close()
		},
		intro.WithName(s.site.Owner),
		intro.WithTitle(s.site.Title),
		intro.WithTimings(s.splash),
		intro.WithFrameHandler(func(f intro.Frame) {
			c.SSEvent("frame", splashFrame{
				Phase:  f.Phase.String(),
				Name:   f.Name,
				Title:  f.Title,
				Cursor: f.CursorVisible,
				Fading: f.Fading,
			})
			c.Writer.Flush()
		}),
	)
	seq.Mount()
	defer seq.Unmount()

	if err := loop.Run(c.Request.Context()); err != nil {
		s.logger.Debug("splash stream closed early", "error", err)
	}
}
