// Package domain defines the core business entities and errors.
package domain

import "errors"

// validationErrors lists every sentinel a Contact validation can return.
var validationErrors = []error{
	ErrValidation,
	ErrInvalidID,
	ErrInvalidEmail,
	ErrInvalidPassword,
	ErrEmptyContactID,
	ErrEmptyFirstName,
	ErrEmptyLastName,
	ErrEmptyEmail,
	ErrEmptyPhone,
	ErrPasswordTooShort,
	ErrPasswordTooLong,
	ErrEmptyPassword,
	ErrEmptyHashedPassword,
}

// IsValidationError reports whether err is, or wraps, one of the domain
// validation sentinels.
func IsValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")
)
