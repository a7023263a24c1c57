// Package config manages application configuration for the Biolink API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - RateLimitConfig: request rate limiting
//   - RegistrationConfig: signup policy (allowed email domains)
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST / DB_PORT    - SurrealDB location
//	DB_NAMESPACE / DB_DATABASE - SurrealDB namespace and database
//	DB_USER / DB_PASSWORD      - SurrealDB credentials
//	JWT_PRIVATE_KEY_PATH - RS256 signing key
//	JWT_EXPIRATION_MINS  - token lifetime in minutes
package config
