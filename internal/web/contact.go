package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// contactForm is the message posted by the contact section.
type contactForm struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// WithContactDelay sets how long a contact submission stays in the sending
// state before the confirmation is returned.
func WithContactDelay(d time.Duration) Option {
	return func(s *Server) { s.contactDelay = d }
}

// contact accepts the contact form and answers with an HTMX fragment. Nothing
// is delivered anywhere; the message is only logged.
func (s *Server) contact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": contactErrorText(err),
		})
		return
	}

	t := time.NewTimer(s.contactDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-c.Request.Context().Done():
		return
	}

	s.logger.Info("contact message received",
		"name", form.Name, "email", form.Email, "length", len(form.Message))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Message sent successfully! I'll get back to you soon.",
	})
}

func contactErrorText(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return "Please enter a valid email address."
			}
			if fe.Tag() == "max" {
				return "Your message is too long."
			}
		}
	}
	return "Please fill in your name, email and message."
}
