package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Oleg-Vlasenko/rlwai/internal/platform/httpx"
)

type userContextKey struct{}

// ContextWithUser stores the authenticated username in context.
func ContextWithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userContextKey{}, username)
}

// UserFromContext extracts the authenticated username from context.
func UserFromContext(ctx context.Context) string {
	username, _ := ctx.Value(userContextKey{}).(string)
	return username
}

// Middleware guards routes behind bearer-token authentication.
type Middleware struct {
	store TokenStore
}

// NewMiddleware constructs the auth middleware around a token store.
func NewMiddleware(store TokenStore) Middleware {
	return Middleware{store: store}
}

const bearerPrefix = "Bearer "

// RequireToken rejects requests without a valid bearer token and attaches
// the resolved username to the request context.
func (m Middleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			httpx.Error(w, http.StatusUnauthorized, "authorization header missing")
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		username, err := m.store.Validate(r.Context(), token)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), username)))
	})
}
