// Package common defines sentinel errors and small helpers shared by the
// sandbox API layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Two-factor errors.
	ErrInvalidOTP = errors.New("invalid or expired OTP")

	// Profile errors.
	ErrUnsupportedField = errors.New("field not supported for this account kind")
)
