package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/leodahal4/portfolio/internal/contact"
	"github.com/leodahal4/portfolio/internal/page"
	"github.com/leodahal4/portfolio/internal/selection"
)

var errBadInput = errors.New("bad input")

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	var invalid *contact.ValidationError
	switch {
	case errors.Is(err, page.ErrUnknownSection), errors.Is(err, selection.ErrUnknownEntry):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, errBadInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "Something went wrong. Please try again later."
	}
	c.HTML(status, "error", gin.H{
		"Status":  http.StatusText(status),
		"Message": message,
	})
}
