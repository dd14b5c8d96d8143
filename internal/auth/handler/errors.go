package handler

import (
	"errors"
	"net/http"

	"sessionauth/internal/auth"

	"github.com/gin-gonic/gin"
)

// writeError is the single place domain errors become HTTP responses.
// Anything outside the taxonomy is logged in full and reported as an opaque
// server error; no internal detail ever reaches the client.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
	case errors.Is(err, auth.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		h.log.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
