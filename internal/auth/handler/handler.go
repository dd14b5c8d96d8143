package handler

import (
	"log/slog"

	"sessionauth/internal/auth"

	"github.com/gin-gonic/gin"
)

// Handler is the request boundary. It extracts credentials and session
// tokens, delegates to the workflow service, and serializes results; it
// makes no auth decisions of its own.
type Handler struct {
	svc *auth.Service
	log *slog.Logger
}

func NewHandler(svc *auth.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/profile", h.Profile)
	r.POST("/logout", h.Logout)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
