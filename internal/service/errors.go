package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmailNotAllowed    = errors.New("email provider not allowed")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrUsernameInvalid    = errors.New("username must be 3-30 characters, letters, digits and underscore")
	ErrUsernameTaken      = errors.New("username is already taken")
)

// ===== Follow Graph Errors =====
var (
	ErrSelfFollow     = errors.New("cannot follow your own account")
	ErrFollowLimit    = errors.New("maximum following limit reached")
	ErrFollowConflict = errors.New("follow transaction could not commit")
)

// ===== Account / Profile Errors =====
var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrLinkNotFound          = errors.New("link not found")
	ErrBioTooLong            = errors.New("bio exceeds maximum length")
	ErrDisplayNameTooLong    = errors.New("display name exceeds maximum length")
	ErrTooManyLinks          = errors.New("too many links")
	ErrTooManyConnections    = errors.New("too many connections")
	ErrInvalidLink           = errors.New("link requires a title and an http(s) URL")
	ErrInvalidConnectionType = errors.New("unknown connection platform")
)
