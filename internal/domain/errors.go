// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the base error for every entity validation failure.
	// The field-specific sentinels (ErrEmptyUserName, ErrEmptyAdTitle, ...)
	// all wrap it, so errors.Is(err, ErrValidation) catches any of them.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)
