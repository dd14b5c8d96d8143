package handler

import (
	"net/http"

	"sessionauth/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Profile(c *gin.Context) {
	// A missing cookie is just an absent token; the workflow decides what
	// that means.
	token, _ := c.Cookie(session.CookieName)

	profile, err := h.svc.Profile(c.Request.Context(), token)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         profile.ID,
			"email":      profile.Email,
			"created_at": profile.CreatedAt,
		},
	})
}
