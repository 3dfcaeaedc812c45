package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tranquility404/study-planner/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header. It fails closed: any missing, malformed, expired or
// mis-signed token denies the request before a handler runs. Every
// schedule and chat route sits behind this; there is no anonymous variant.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				denyRequest(w, "Invalid or missing token")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				denyRequest(w, "Invalid or missing token")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				denyRequest(w, "Invalid or missing token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user identifier from the
// request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func denyRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{"status": 1, "message": msg})
}
