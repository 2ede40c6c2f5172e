// Package web serves the portfolio page and the HTMX fragments that drive
// its stateful components.
package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leodahal4/portfolio/internal/page"
	"github.com/leodahal4/portfolio/internal/visitors"
)

// SessionCookie names the cookie carrying the visitor's session id.
const SessionCookie = "portfolio_session"

const sessionKey = "session"

// Server routes requests to visitor sessions.
type Server struct {
	engine   *gin.Engine
	registry *page.Registry
}

// New builds the router. tracker may be nil to disable visitor metrics.
func New(registry *page.Registry, tracker *visitors.Tracker) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{engine: gin.Default(), registry: registry}
	r := s.engine
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(assets()))
	if tracker != nil {
		r.Use(tracker.Middleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Everything below works on the visitor's session.
	ui := r.Group("/", s.withSession())
	ui.GET("/", s.index)
	ui.POST("/reveal/:section", s.reveal)
	ui.GET("/experience/:id", s.selectExperience)
	ui.GET("/skills/bars", s.skillBars)
	ui.GET("/skills/:id", s.selectSkills)
	ui.POST("/contact", s.submitContact)
	ui.GET("/contact/status", s.contactStatus)
	ui.POST("/nav/menu", s.navMenu)
	ui.POST("/nav/scroll", s.navScroll)

	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)
		sess, created, err := s.registry.Acquire(id)
		if err != nil {
			log.Printf("Error creating session: %v", err)
			s.fail(c, err)
			c.Abort()
			return
		}
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sess.ID(), 0, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func session(c *gin.Context) *page.Session {
	return c.MustGet(sessionKey).(*page.Session)
}
