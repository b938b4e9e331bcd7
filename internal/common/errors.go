// Package common defines shared constants and sentinel errors used across
// the CineVault server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorEmailTaken = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Login errors. The same value covers "no such user" and "wrong
	// password" so that responses do not reveal which emails exist.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Password policy errors.
	ErrorWeakPassword = errors.New("password does not meet strength requirements")

	// Token errors. ErrorSessionExpired means the token itself is intact
	// but its embedded version no longer matches the stored one.
	ErrorInvalidToken   = errors.New("invalid token")
	ErrorSessionExpired = errors.New("session expired")

	// Change/reset flow errors.
	ErrorWrongCurrentPassword = errors.New("wrong current password")
	ErrorWrongAnswer          = errors.New("wrong security answer")
	ErrorUserNotFound         = errors.New("user not found")
)
