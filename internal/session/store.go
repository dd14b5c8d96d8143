package session

import (
	"context"
	"time"
)

// Session is the record behind an opaque bearer token. Email is a snapshot
// taken at issuance for display; account existence is always re-checked
// against the credential store, never inferred from the snapshot.
type Session struct {
	Token     string    `json:"token"`
	AccountID int64     `json:"account_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions keyed by opaque token.
//
// Expiry is lazy: Get reports a past-expiry record as absent. Backends may
// additionally sweep expired records, but that must not change what Get
// returns.
type Store interface {
	// Create mints a fresh token and persists the session with absolute
	// expiry now + ttl.
	Create(ctx context.Context, accountID int64, email string, ttl time.Duration) (*Session, error)

	// Get returns the live session for token, or (nil, nil) when the token
	// is unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)

	// Destroy removes the session. Destroying an unknown token is not an
	// error.
	Destroy(ctx context.Context, token string) error
}
