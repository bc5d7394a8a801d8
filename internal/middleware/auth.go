package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/growwitup/backend/internal/auth"
)

// Context keys for authenticated user data
const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
)

// Auth creates a middleware that requires a valid bearer credential in the
// Authorization header. Both credential policies are validated through the
// token service.
func (m *Middleware) Auth(tokenSvc *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var credential string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					credential = parts[1]
				}
			}

			if credential == "" {
				http.Error(w, `{"error":"Token is required for this action"}`, http.StatusUnauthorized)
				return
			}

			claims, err := tokenSvc.Validate(credential)
			if err != nil {
				m.log.Debug().Err(err).Msg("credential validation failed")
				http.Error(w, `{"error":"Unauthorized to perform this action"}`, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, EmailKey, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
