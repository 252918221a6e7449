// Package common defines shared sentinel errors used across the service,
// repository, and HTTP layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	// ErrorForbidden indicates a valid identity that is not permitted to act
	// on the specific resource (unregistered refresh token, not the owner).
	ErrorForbidden = errors.New("forbidden")

	// Validation errors (missing or malformed input).
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
