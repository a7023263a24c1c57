package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/pkg/jwt"
)

// TokenVerifier defines the interface for token validation
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// Auth returns a middleware that validates JWT tokens
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				} else {
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsKey is the context key for JWT claims
const ClaimsKey contextKey = "claims"

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

// OptionalAuth is like Auth but doesn't require authentication.
// It sets user info in context when a valid token is present, letting
// public endpoints personalize their response for signed-in viewers.
func OptionalAuth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				// Invalid token, but optional so continue without auth
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
