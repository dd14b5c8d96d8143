package account

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "accounts_email_key"}

	require.True(t, isUniqueViolation(dup))
	require.True(t, isUniqueViolation(fmt.Errorf("account: create: %w", dup)))

	require.False(t, isUniqueViolation(nil))
	require.False(t, isUniqueViolation(errors.New("connection refused")))
	require.False(t, isUniqueViolation(&pq.Error{Code: "23503"})) // fk violation
}
