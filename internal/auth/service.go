package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sessionauth/internal/account"
	"sessionauth/internal/session"
)

// Profile is what a session-holder may see about their own account.
// It never carries the password digest.
type Profile struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}

// Service owns the credential workflow. It holds no account or session state
// between requests; every fact is re-read from the stores, so the stores'
// atomic operations are the only synchronization needed.
type Service struct {
	accounts account.Store
	sessions session.Store
	hasher   Hasher
	ttl      time.Duration
	log      *slog.Logger
}

func NewService(
	accounts account.Store,
	sessions session.Store,
	hasher Hasher,
	ttl time.Duration,
	log *slog.Logger,
) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		hasher:   hasher,
		ttl:      ttl,
		log:      log,
	}
}

// Signup registers a new account and issues its first session.
func (s *Service) Signup(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	acct, err := s.accounts.Create(ctx, email, digest)
	if err != nil {
		// The lookup above is only an optimization; a concurrent signup can
		// still win the insert. The unique constraint is the authority, and
		// the caller sees the same conflict either way.
		if errors.Is(err, account.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	sess, err := s.sessions.Create(ctx, acct.ID, acct.Email, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("signup: create session: %w", err)
	}

	s.log.Info("account created", "account_id", acct.ID)
	return sess, nil
}

// Login verifies credentials and issues a fresh session. Prior sessions for
// the account are untouched; concurrent sessions are allowed.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	acct, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if acct == nil {
		// Unknown email and wrong password must be indistinguishable.
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, acct.PasswordDigest) {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, acct.ID, acct.Email, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("login: create session: %w", err)
	}

	return sess, nil
}

// Profile resolves a session token to the live account behind it. The
// account is re-fetched by id; the email snapshot on the session is not
// trusted for existence.
func (s *Service) Profile(ctx context.Context, token string) (*Profile, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if sess == nil {
		return nil, ErrNotAuthenticated
	}

	acct, err := s.accounts.FindByID(ctx, sess.AccountID)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if acct == nil {
		// Account deleted after the session was issued.
		return nil, ErrUserNotFound
	}

	return &Profile{
		ID:        acct.ID,
		Email:     acct.Email,
		CreatedAt: acct.CreatedAt,
	}, nil
}

// Logout destroys the presented session. It succeeds whether or not the
// token refers to a live session, so repeated logouts are harmless.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
