package handler

import (
	"net/http"

	"sessionauth/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)

	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		h.writeError(c, err)
		return
	}

	session.ClearCookie(c.Writer)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
