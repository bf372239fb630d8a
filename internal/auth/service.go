package auth

import "context"

// Service wraps the login rules around a token store.
type Service struct {
	users map[string]string
	store TokenStore
}

// NewService constructs a Service from a credential map and a token store.
func NewService(users map[string]string, store TokenStore) *Service {
	return &Service{users: users, store: store}
}

// Login checks the submitted credentials and issues a token on success.
// Credentials are compared as configured, without hashing.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	expected, ok := s.users[username]
	if !ok || expected != password {
		return "", ErrInvalidCredentials
	}
	return s.store.Issue(ctx, username)
}
