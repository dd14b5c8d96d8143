package handler

import (
	"net/http"

	"sessionauth/internal/auth"
	"sessionauth/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, auth.ErrMissingCredentials)
		return
	}

	sess, err := h.svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	session.SetCookie(c.Writer, sess.Token, sess.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User created successfully",
		"email":   sess.Email,
	})
}
