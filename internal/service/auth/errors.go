package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token signature doesn't match or the
	// token failed validation for a reason other than expiry or structure
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token is structurally malformed
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrPasswordMismatch indicates the plaintext password does not match
	// the stored hash. A malformed stored hash reports as a mismatch, never
	// as a distinct failure.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrLoginRateLimited indicates too many recent login attempts for the
	// same email address.
	ErrLoginRateLimited = errors.New("too many login attempts")
)
