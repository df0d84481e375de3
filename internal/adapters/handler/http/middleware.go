package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/notes/api/internal/core/ports"
)

type contextKey string

// UserIDKey holds the authenticated user id resolved by AuthMiddleware.
const UserIDKey contextKey = "userID"

// AuthMiddleware guards a route group behind a `Bearer <token>` Authorization
// header. A missing or malformed header is rejected before the verifier runs.
func AuthMiddleware(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "Unauthorized: no token provided", http.StatusUnauthorized)
				return
			}

			userID, err := authService.VerifyToken(token)
			if err != nil {
				http.Error(w, "Unauthorized: invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
