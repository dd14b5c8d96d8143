package auth

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way password hashing primitive. Hash salts per call, so
// the same plaintext yields a different digest every time; digests are only
// ever checked through Verify, never compared for equality.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher hashes with bcrypt. The salt lives inside the digest, and the
// cost factor keeps brute-forcing expensive; a verification is allowed to
// block the request goroutine for its full duration.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. A malformed digest is a
// verification failure, not an error.
func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
