package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps tokens in Redis using its native key TTL. Unlike
// MemoryStore, tokens survive process restarts and are shared between
// instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore with the given token lifetime.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return "token:" + token
}

// Issue implements TokenStore.
func (s *RedisStore) Issue(ctx context.Context, username string) (string, error) {
	value, err := newTokenValue()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(value), username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("auth: store token: %w", err)
	}
	return value, nil
}

// Validate implements TokenStore. Expiry is enforced by Redis itself.
func (s *RedisStore) Validate(ctx context.Context, token string) (string, error) {
	username, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("auth: lookup token: %w", err)
	}
	return username, nil
}

// Revoke implements TokenStore.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("auth: revoke token: %w", err)
	}
	return nil
}
