package api

import (
	"errors"
	"net/http"

	"github.com/krongr/adboard/internal/domain"
	"github.com/krongr/adboard/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// A missing ad maps to 410 Gone rather than 404: the original interface
// reports removed ads that way and clients depend on it.
func MapErrorToStatusCode(err error) int {
	switch {
	// Gone
	case errors.Is(err, store.ErrAdNotFound):
		return http.StatusGone

	// Conflict errors
	case errors.Is(err, store.ErrNameExists):
		return http.StatusConflict

	// Bad request errors. A missing referenced user is a client mistake,
	// whether it was caught by the owner lookup or by the foreign key.
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrAdNotFound):
		return "requested ad has been removed"

	case errors.Is(err, store.ErrNameExists):
		return "user name already exists"

	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrInvalidEntity):
		return "referenced user does not exist"

	case errors.Is(err, domain.ErrInvalidID):
		return "ad ID is required"

	case errors.Is(err, domain.ErrValidation):
		return "invalid input"

	default:
		return "An unexpected error occurred"
	}
}
