package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE class for unique constraint failures.
const uniqueViolation = "23505"

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_digest, created_at
		FROM accounts
		WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.PasswordDigest, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account: find by email: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*Account, error) {
	var a Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_digest, created_at
		FROM accounts
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Email, &a.PasswordDigest, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account: find by id: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) Create(ctx context.Context, email, passwordDigest string) (*Account, error) {
	var a Account
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (email, password_digest)
		VALUES ($1, $2)
		RETURNING id, email, created_at
	`, email, passwordDigest).Scan(&a.ID, &a.Email, &a.CreatedAt)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("account: create: %w", err)
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
