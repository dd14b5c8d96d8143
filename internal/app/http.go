package app

import (
	"context"
	"fmt"
	"log/slog"

	"sessionauth/internal/account"
	"sessionauth/internal/auth"
	"sessionauth/internal/auth/handler"
	"sessionauth/internal/config"
	"sessionauth/internal/middleware"
	"sessionauth/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config, log *slog.Logger) (*gin.Engine, func() error, error) {
	in, err := setupInfra(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	accountStore := account.NewPostgresStore(in.db)

	var (
		sessionStore session.Store
		memStore     *session.MemoryStore
	)
	switch cfg.SessionStore {
	case "redis":
		sessionStore = session.NewRedisStore(in.redis.Client)
	case "memory":
		memStore = session.NewMemoryStore()
		memStore.StartJanitor(cfg.SessionTTL / 2)
		sessionStore = memStore
		log.Warn("using in-memory session store; sessions will not survive restarts")
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}

	svc := auth.NewService(
		accountStore,
		sessionStore,
		auth.NewBcryptHasher(),
		cfg.SessionTTL,
		log,
	)

	authHandler := handler.NewHandler(svc, log)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	cleanup := func() error {
		if memStore != nil {
			_ = memStore.Close()
		}
		if in.redis != nil {
			_ = in.redis.Close()
		}
		return in.db.Close()
	}

	return router, cleanup, nil
}
