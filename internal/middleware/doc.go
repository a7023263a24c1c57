// Package middleware provides HTTP middleware for the Biolink API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, and request processing.
//
// # Authentication
//
// The auth middleware validates JWT tokens and extracts user information:
//
//	mux.Handle("GET /v1/auth/me", middleware.Chain(h, middleware.Auth(tokens)))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// Public profile routes use OptionalAuth so a signed-in viewer's follow
// relationship can be reflected without requiring a token.
//
// # Rate Limiting
//
// Rate limiting protects the view and click counters from abuse:
//
//	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{})
//	handler = middleware.Chain(handler, middleware.RateLimit(limiter))
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetClaims(ctx): Returns parsed JWT claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
