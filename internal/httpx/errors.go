package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/commerce-api/internal/apperr"
)

// HTTPError is the body of every failed request.
// swagger:model
type HTTPError struct {
	Timestamp time.Time             `json:"timestamp"`
	Status    int                   `json:"status"`
	Error     string                `json:"error"`
	Path      string                `json:"path"`
	Errors    []apperr.FieldMessage `json:"errors,omitempty"`
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindValidation:
		return http.StatusUnprocessableEntity
	case apperr.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err with the status its Kind maps to. Internal errors
// are logged and hidden from the caller.
func WriteError(c *gin.Context, log *slog.Logger, err error) {
	code := StatusOf(err)
	body := HTTPError{
		Timestamp: time.Now().UTC(),
		Status:    code,
		Path:      c.Request.URL.Path,
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		body.Error = ae.Msg
		body.Errors = ae.Fields
	} else {
		log.Error("request failed", "rid", c.GetString(ridKey), "path", c.Request.URL.Path, "err", err)
		body.Error = "internal server error"
	}
	c.AbortWithStatusJSON(code, body)
}

func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     msg,
		Path:      c.Request.URL.Path,
	})
}
