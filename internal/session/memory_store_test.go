package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	sess, err := store.Create(ctx, 7, "a@x.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, int64(7), sess.AccountID)
	require.Equal(t, "a@x.com", sess.Email)

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, sess.AccountID, got.AccountID)
	require.Equal(t, sess.Email, got.Email)
}

func TestMemoryStoreUnknownTokenIsAbsent(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	got, err := store.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	sess, err := store.Create(ctx, 1, "a@x.com", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	// No sweep has run; Get alone must report the session gone.
	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStoreDestroyIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	sess, err := store.Create(ctx, 1, "a@x.com", time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, sess.Token))
	require.NoError(t, store.Destroy(ctx, sess.Token))
	require.NoError(t, store.Destroy(ctx, "never-existed"))

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStoreJanitorSweepsExpired(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	sess, err := store.Create(ctx, 1, "a@x.com", 5*time.Millisecond)
	require.NoError(t, err)

	store.StartJanitor(10 * time.Millisecond)

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		_, ok := store.sessions[sess.Token]
		return !ok
	}, time.Second, 10*time.Millisecond)
}
