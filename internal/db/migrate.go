package db

import (
	"context"
	"database/sql"
)

// The accounts schema is provisioned once at boot, before the server accepts
// traffic. The statement is idempotent so restarts are safe.
//
// The unique constraint on email is the sole authority for duplicate
// registration: concurrent signups with the same email race here, not in
// application code.
const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
    id bigserial PRIMARY KEY,
    email text NOT NULL UNIQUE,
    password_digest text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);
`

func Provision(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, accountsSchema)
	return err
}
