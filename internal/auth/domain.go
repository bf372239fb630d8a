// Package auth implements the bearer-token login gate.
package auth

import (
	"errors"
	"time"
)

// Token is an issued bearer credential. Tokens are volatile: a process
// restart (or redis flush) invalidates all of them.
type Token struct {
	Value     string
	Username  string
	ExpiresAt time.Time
}

var (
	// ErrInvalidCredentials is returned on any login mismatch. Unknown user
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers unknown, malformed and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)
