package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateToken mints a cryptographically secure session token.
// 32 bytes = 256 bits of entropy. The token carries no embedded semantics;
// it is only ever used as a lookup key.
func GenerateToken() (string, error) {
	const size = 32

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
