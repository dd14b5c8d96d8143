package account

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned by Create when the email is already
// registered. It is raised from the store's unique constraint, so a
// read-then-write race between two signups still yields exactly one success.
var ErrDuplicateEmail = errors.New("account: email already registered")

// Store is the credential store contract. Absence is a valid outcome for
// lookups, reported as (nil, nil) rather than an error.
type Store interface {
	// FindByEmail does an exact-match lookup; email is case-sensitive as stored.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByID retrieves an account by its immutable id.
	FindByID(ctx context.Context, id int64) (*Account, error)

	// Create inserts a new account and returns it with the store-assigned id.
	// The returned account carries no digest. Returns ErrDuplicateEmail on a
	// uniqueness conflict.
	Create(ctx context.Context, email, passwordDigest string) (*Account, error)
}
