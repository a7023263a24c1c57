package handler

import (
	"errors"
	"log/slog"

	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrAccountNotFound):
		return model.NewNotFoundError("account")
	case errors.Is(err, service.ErrLinkNotFound):
		return model.NewNotFoundError("link")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailExists):
		return model.NewConflictError(err.Error())
	case errors.Is(err, service.ErrFollowConflict):
		return model.NewConflictError("the follow state changed concurrently, retry the toggle")

	// ===== Limit Errors → 422 with extension fields =====
	case errors.Is(err, service.ErrFollowLimit):
		return model.NewLimitExceededError("followed accounts", model.MaxFollowing, model.MaxFollowing)

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrSelfFollow):
		return model.NewValidationError([]model.FieldError{{Field: "target", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrEmailNotAllowed),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})
	case errors.Is(err, service.ErrUsernameInvalid):
		return model.NewValidationError([]model.FieldError{{Field: "username", Message: err.Error()}})
	case errors.Is(err, service.ErrBioTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "bio", Message: err.Error()}})
	case errors.Is(err, service.ErrDisplayNameTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "display_name", Message: err.Error()}})
	case errors.Is(err, service.ErrTooManyLinks),
		errors.Is(err, service.ErrInvalidLink):
		return model.NewValidationError([]model.FieldError{{Field: "links", Message: err.Error()}})
	case errors.Is(err, service.ErrTooManyConnections),
		errors.Is(err, service.ErrInvalidConnectionType):
		return model.NewValidationError([]model.FieldError{{Field: "connections", Message: err.Error()}})

	// ===== Everything else → 500 =====
	default:
		slog.Error("unhandled service error", slog.String("error", err.Error()))
		return model.NewInternalError("an unexpected error occurred")
	}
}
