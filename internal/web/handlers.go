package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/leodahal4/portfolio/internal/contact"
)

// StatusStopPolling tells HTMX to stop polling the element that made the
// request.
const StatusStopPolling = 286

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", session(c).View())
}

func (s *Server) reveal(c *gin.Context) {
	ratio, err := strconv.ParseFloat(c.PostForm("ratio"), 64)
	if err != nil {
		s.fail(c, errors.Wrap(errBadInput, "ratio"))
		return
	}

	sess := session(c)
	section := c.Param("section")
	if _, err := sess.Reveal(section, ratio); err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "section-"+section, sess.View())
}

func (s *Server) selectExperience(c *gin.Context) {
	sess := session(c)
	if err := sess.SelectExperience(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "experience-panel", sess.View())
}

func (s *Server) selectSkills(c *gin.Context) {
	sess := session(c)
	if err := sess.SelectSkills(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "skills-panel", sess.View())
}

func (s *Server) skillBars(c *gin.Context) {
	v := session(c).View()
	status := http.StatusOK
	if v.Skills.Done {
		status = StatusStopPolling
	}
	c.HTML(status, "skills-bars", v)
}

func (s *Server) submitContact(c *gin.Context) {
	sess := session(c)

	var in contact.Fields
	if err := c.ShouldBind(&in); err != nil {
		s.fail(c, errors.Wrap(errBadInput, err.Error()))
		return
	}

	status := http.StatusOK
	if err := sess.SubmitContact(in); err != nil {
		status = statusFor(err)
		if status != http.StatusUnprocessableEntity && status != http.StatusConflict {
			s.fail(c, err)
			return
		}
	}
	c.HTML(status, "contact-form", sess.View())
}

func (s *Server) contactStatus(c *gin.Context) {
	v := session(c).View()
	status := http.StatusOK
	if v.Contact.State == contact.Idle {
		status = StatusStopPolling
	}
	c.HTML(status, "contact-form", v)
}

func (s *Server) navMenu(c *gin.Context) {
	sess := session(c)
	if c.PostForm("action") == "close" {
		sess.Nav().CloseMenu()
	} else {
		sess.Nav().ToggleMenu()
	}
	c.HTML(http.StatusOK, "navbar", sess.View())
}

func (s *Server) navScroll(c *gin.Context) {
	y, err := strconv.Atoi(c.PostForm("y"))
	if err != nil {
		s.fail(c, errors.Wrap(errBadInput, "y"))
		return
	}

	sess := session(c)
	if !sess.Nav().Scroll(y) {
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, "navbar", sess.View())
}
