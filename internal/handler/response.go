package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/service"
)

// sendError emits the uniform error envelope used by every endpoint.
func sendError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "message": message})
}

// sendServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors become an opaque 500 so internals never leak.
func sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		sendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		sendError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUserNotFound):
		sendError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrVideoNotFound):
		sendError(c, http.StatusNotFound, "Video not found")
	case errors.Is(err, service.ErrEmailTaken):
		sendError(c, http.StatusConflict, "Email already registered")
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
