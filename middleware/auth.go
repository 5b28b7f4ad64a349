package middleware

import (
	"context"
	"net/http"
	"strings"

	"notes-app/token"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity returns the verified email placed in the context by Authenticate,
// or "" when the request was not authenticated.
func Identity(ctx context.Context) string {
	email, _ := ctx.Value(identityKey).(string)
	return email
}

// WithIdentity attaches a verified email to the context. Exported for
// handler tests.
func WithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey, email)
}

// Authenticate verifies the bearer token and stores the subject email in the
// request context. Any failure is a plain 401.
func Authenticate(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				http.Error(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			email, err := tokens.Verify(tokenStr)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			r = r.WithContext(WithIdentity(r.Context(), email))
			next.ServeHTTP(w, r)
		})
	}
}
