package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// TokenStore issues, validates and revokes opaque bearer tokens.
type TokenStore interface {
	// Issue creates a token for username and returns its value.
	Issue(ctx context.Context, username string) (string, error)
	// Validate resolves a token value to its username, or ErrInvalidToken.
	Validate(ctx context.Context, token string) (string, error)
	// Revoke removes a token. Revoking an unknown token is not an error.
	Revoke(ctx context.Context, token string) error
}

// newTokenValue returns 16 random bytes hex encoded.
func newTokenValue() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("auth: generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// MemoryStore keeps tokens in a mutex-guarded map. Expired tokens are
// evicted lazily on the first lookup past their expiry.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]Token
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore constructs a MemoryStore with the given token lifetime.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]Token),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue implements TokenStore.
func (s *MemoryStore) Issue(ctx context.Context, username string) (string, error) {
	value, err := newTokenValue()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[value] = Token{
		Value:     value,
		Username:  username,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return value, nil
}

// Validate implements TokenStore. The expiry comparison is strict, so a
// token checked exactly at its expiry instant is still accepted.
func (s *MemoryStore) Validate(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ok := s.tokens[token]
	if !ok {
		return "", ErrInvalidToken
	}
	if s.now().After(tok.ExpiresAt) {
		delete(s.tokens, token)
		return "", ErrInvalidToken
	}
	return tok.Username, nil
}

// Revoke implements TokenStore.
func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}
