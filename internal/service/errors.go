package service

import "errors"

// Common service-level errors.
var (
	// ErrInvalidCredentials is returned when login fails, regardless of
	// whether the email is unknown or the password is wrong. The two cases
	// are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
