package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"person_registry/internal/models"
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeError translates an error kind into an HTTP status. Client errors
// keep their message; server-side failures get a generic body and an error
// log entry.
func (h *Handler) writeError(c *gin.Context, err error, logKey string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrTransientStorage):
		status = http.StatusServiceUnavailable
	}

	if h.log != nil {
		if status >= http.StatusInternalServerError {
			h.log.Errorw(logKey, "err", err)
		} else {
			h.log.Infow(logKey, "err", err)
		}
	}

	msg := err.Error()
	switch {
	case status == http.StatusServiceUnavailable:
		msg = "storage temporarily unavailable"
	case status >= http.StatusInternalServerError:
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}
