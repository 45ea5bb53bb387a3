package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() *Contact {
	c, _ := NewContact("Ada", "", "Lovelace", "1815-12-10",
		"ada@example.com", "+44 20 7946 0958", "Mathematician", "Analytical Engines Ltd", "secret1")
	return c
}

func TestNewContact(t *testing.T) {
	t.Parallel()

	contact, err := NewContact("Ada", "King", "Lovelace", "1815-12-10",
		"ada@example.com", "+44 20 7946 0958", "Mathematician", "", "secret1")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, "Ada", contact.FirstName)
	assert.Equal(t, "King", contact.MiddleName)
	assert.Equal(t, "Lovelace", contact.LastName)
	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Equal(t, "secret1", contact.Password)
	assert.Empty(t, contact.HashedPassword)
	assert.False(t, contact.CreatedAt.IsZero())
	assert.Equal(t, contact.CreatedAt, contact.UpdatedAt)
}

func TestContactValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Contact)
		wantErr error
	}{
		{
			name:    "valid contact",
			mutate:  func(c *Contact) {},
			wantErr: nil,
		},
		{
			name:    "missing ID",
			mutate:  func(c *Contact) { c.ID = uuid.Nil },
			wantErr: ErrEmptyContactID,
		},
		{
			name:    "missing first name",
			mutate:  func(c *Contact) { c.FirstName = "  " },
			wantErr: ErrEmptyFirstName,
		},
		{
			name:    "missing last name",
			mutate:  func(c *Contact) { c.LastName = "" },
			wantErr: ErrEmptyLastName,
		},
		{
			name:    "missing email",
			mutate:  func(c *Contact) { c.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			mutate:  func(c *Contact) { c.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with bad domain",
			mutate:  func(c *Contact) { c.Email = "ada@localhost" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing phone",
			mutate:  func(c *Contact) { c.Phone = "" },
			wantErr: ErrEmptyPhone,
		},
		{
			name:    "password too short",
			mutate:  func(c *Contact) { c.Password = "five5" },
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "password too long",
			mutate: func(c *Contact) {
				c.Password = string(make([]byte, 73))
			},
			wantErr: ErrPasswordTooLong,
		},
		{
			name: "no password at all",
			mutate: func(c *Contact) {
				c.Password = ""
				c.HashedPassword = ""
			},
			wantErr: ErrEmptyPassword,
		},
		{
			name: "stored contact with hash only",
			mutate: func(c *Contact) {
				c.Password = ""
				c.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := validContact()
			tt.mutate(contact)

			err := contact.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestContactOptionalFields(t *testing.T) {
	t.Parallel()

	// middleName, dob, occupation and company may all be empty
	contact, err := NewContact("Grace", "", "Hopper", "",
		"grace@example.com", "555-0100", "", "", "secret1")
	require.NoError(t, err)
	assert.NoError(t, contact.Validate())
}
