package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyContactID      = errors.New("contact ID cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPhone          = errors.New("phone cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Contact represents a single entry in the contacts directory. The email
// doubles as the login identifier, so every contact also carries credentials.
// The plaintext password exists only transiently during creation; the hash is
// never serialized to JSON.
type Contact struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName"`
	DOB        string    `json:"dob,omitempty"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Occupation string    `json:"occupation,omitempty"`
	Company    string    `json:"company,omitempty"`

	// Password holds the plaintext credential between request decoding and
	// hashing. It must never be persisted or serialized.
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewContact creates a Contact from the fields supplied at registration.
// It assigns a fresh UUID and timestamps, then validates the result.
//
// NOTE: the plaintext password is carried as-is; the caller is responsible
// for hashing it before the contact reaches the store.
func NewContact(firstName, middleName, lastName, dob, email, phone, occupation, company, password string) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		ID:         uuid.New(),
		FirstName:  firstName,
		MiddleName: middleName,
		LastName:   lastName,
		DOB:        dob,
		Email:      email,
		Phone:      phone,
		Occupation: occupation,
		Company:    company,
		Password:   password,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks if the Contact has valid data.
// Returns an error if any field fails validation.
func (c *Contact) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyContactID
	}

	if strings.TrimSpace(c.FirstName) == "" {
		return ErrEmptyFirstName
	}

	if strings.TrimSpace(c.LastName) == "" {
		return ErrEmptyLastName
	}

	if c.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(c.Email) {
		return ErrInvalidEmail
	}

	if strings.TrimSpace(c.Phone) == "" {
		return ErrEmptyPhone
	}

	if c.Password != "" {
		// A plaintext password is present, so this contact is mid-creation
		// and the credential itself must be acceptable.
		if len(c.Password) < 6 {
			return ErrPasswordTooShort
		}
		if len(c.Password) > 72 {
			// bcrypt's practical input limit
			return ErrPasswordTooLong
		}
	} else if c.HashedPassword == "" {
		// Persisted contacts always carry a hash.
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format: a single
// non-leading, non-trailing '@' with a dotted domain part. Request-level
// validation uses the validator package's stricter email rule; this check
// only guards against entities constructed outside the HTTP boundary.
func validateEmailFormat(email string) bool {
	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if strings.Contains(domainPart, "@") {
		return false
	}

	dotIndex := strings.Index(domainPart, ".")
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
