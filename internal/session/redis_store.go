package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store. Absolute expiry maps
// onto the key's native TTL, so Redis drops dead sessions on its own.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Create(ctx context.Context, accountID int64, email string, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session: ttl must be positive")
	}

	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	s := Session{
		Token:     token,
		AccountID: accountID,
		Email:     email,
		ExpiresAt: time.Now().Add(ttl),
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("session: failed to marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key(token), data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("session: failed to persist: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to load: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	// The key TTL already enforces expiry; re-check the recorded instant so
	// behavior does not depend on Redis sweep timing.
	if time.Now().After(s.ExpiresAt) {
		return nil, nil
	}

	return &s, nil
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	// DEL of a missing key is a no-op, which keeps Destroy idempotent.
	return r.client.Del(ctx, r.key(token)).Err()
}
