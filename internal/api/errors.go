package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/evanfield/contactdir/internal/api/shared"
	"github.com/evanfield/contactdir/internal/domain"
	"github.com/evanfield/contactdir/internal/service"
	"github.com/evanfield/contactdir/internal/service/auth"
	"github.com/evanfield/contactdir/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
//
// Duplicate records and bad credentials both map to 400 rather than the
// more conventional 409 and 401: clients of this API treat every
// rejected submission uniformly as a bad request.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication token errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Rejected submissions
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for an
// internal error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrContactNotFound):
		return "Contact not found"

	case errors.Is(err, store.ErrEmailExists):
		return "A contact with this email already exists"

	case errors.Is(err, store.ErrPhoneExists):
		return "A contact with this phone number already exists"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err):
		return "Invalid contact data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the error response for a failed service
// call, mapping the error to a status code and a safe message and
// logging the original in redacted form.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// fieldMessages maps request struct fields to the messages returned for
// their failed validation rules.
var fieldMessages = map[string]map[string]string{
	"FirstName": {
		"required": "First name is required",
	},
	"LastName": {
		"required": "Last name is required",
	},
	"Email": {
		"required": "Please include a valid email",
		"email":    "Please include a valid email",
	},
	"Phone": {
		"required": "Phone number is required",
	},
	"Password": {
		"required": "Please enter a password with 6 or more characters",
		"min":      "Please enter a password with 6 or more characters",
		"max":      "Password is too long",
	},
}

// jsonFieldNames maps struct field names back to their wire names.
var jsonFieldNames = map[string]string{
	"FirstName":  "firstName",
	"MiddleName": "middleName",
	"LastName":   "lastName",
	"DOB":        "dob",
	"Email":      "email",
	"Phone":      "phone",
	"Occupation": "occupation",
	"Company":    "company",
	"Password":   "password",
}

// ValidationFieldErrors converts a validator error into per-field
// messages suitable for the error response body. Non-validator errors
// yield a single generic entry.
func ValidationFieldErrors(err error) []shared.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []shared.FieldError{{Field: "body", Msg: "Invalid request body"}}
	}

	fields := make([]shared.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		name := fe.Field()
		if wire, ok := jsonFieldNames[name]; ok {
			name = wire
		}

		msg := "Invalid value"
		if byTag, ok := fieldMessages[fe.Field()]; ok {
			if m, ok := byTag[fe.Tag()]; ok {
				msg = m
			}
		}

		fields = append(fields, shared.FieldError{Field: name, Msg: msg})
	}
	return fields
}
