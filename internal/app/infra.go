package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"sessionauth/internal/config"
	"sessionauth/internal/db"
	"sessionauth/internal/redis"

	_ "github.com/lib/pq"
)

type infra struct {
	db    *sql.DB
	redis *redis.Client
}

// setupInfra acquires the process-wide storage handles. Unreachable storage
// at startup is fatal; the caller aborts before the server accepts traffic.
func setupInfra(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.Provision(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("provision schema: %w", err)
	}

	log.Info("database ready")

	in := &infra{db: sqlDB}

	if cfg.SessionStore == "redis" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		in.redis = redisClient
		log.Info("redis ready")
	}

	return in, nil
}
