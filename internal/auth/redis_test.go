package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreIssueAndValidate(t *testing.T) {
	store, _ := newRedisStore(t, 5*time.Minute)

	token, err := store.Issue(context.Background(), "admin")
	require.NoError(t, err)
	require.Len(t, token, 32)

	username, err := store.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newRedisStore(t, 300*time.Second)

	token, err := store.Issue(context.Background(), "admin")
	require.NoError(t, err)

	mr.FastForward(301 * time.Second)

	_, err = store.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRedisStoreRevoke(t *testing.T) {
	store, _ := newRedisStore(t, 5*time.Minute)

	token, err := store.Issue(context.Background(), "admin")
	require.NoError(t, err)

	require.NoError(t, store.Revoke(context.Background(), token))
	_, err = store.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRedisStoreUnknownToken(t *testing.T) {
	store, _ := newRedisStore(t, 5*time.Minute)

	_, err := store.Validate(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
