// Package handler provides HTTP request handlers for the Biolink API.
//
// The handler package contains all HTTP endpoint implementations organized
// by domain. Each handler struct encapsulates the services needed to serve
// requests for a feature area (authentication, profiles, the follow graph,
// leaderboards).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details via MapServiceError
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources with a count
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Protected handlers require authentication via JWT tokens. The auth
// middleware extracts the user ID and makes it available via
// middleware.GetUserID(r.Context()).
package handler
