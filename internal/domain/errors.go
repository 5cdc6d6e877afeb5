package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is not a well-formed
	// object reference (24-character hex string).
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyPassword is returned when a required password is empty.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrForbidden is returned when an operation is not permitted for the
	// caller's role.
	ErrForbidden = errors.New("operation not permitted")
)
