package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken()
	require.NoError(t, err)
	second, err := GenerateToken()
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	// 32 bytes base64url without padding.
	require.Len(t, first, 43)
	require.NotContains(t, first, "=")
	require.NotContains(t, first, "+")
	require.NotContains(t, first, "/")
}
