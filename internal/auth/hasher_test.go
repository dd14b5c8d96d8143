package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashProducesDistinctDigests(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("pw1")
	require.NoError(t, err)
	second, err := h.Hash("pw1")
	require.NoError(t, err)

	// Per-call random salt: same plaintext, different digests.
	require.NotEqual(t, first, second)

	require.True(t, h.Verify("pw1", first))
	require.True(t, h.Verify("pw1", second))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("correct horse")
	require.NoError(t, err)

	require.False(t, h.Verify("battery staple", digest))
}

func TestVerifyMalformedDigestFailsClosed(t *testing.T) {
	h := NewBcryptHasher()

	require.False(t, h.Verify("anything", ""))
	require.False(t, h.Verify("anything", "not-a-bcrypt-digest"))
}
