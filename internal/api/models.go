package api

// Common request payloads for the contacts endpoints. Responses use the
// shared Envelope with the contact entity (or a slice of them) as data.

// CreateContactRequest defines the payload for creating a contact.
type CreateContactRequest struct {
	FirstName  string `json:"firstName"  validate:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"   validate:"required"`
	DOB        string `json:"dob"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"required"`
	Occupation string `json:"occupation"`
	Company    string `json:"company"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
}

// UpdateContactRequest defines the payload for updating a contact. The
// name, email and phone fields are mandatory on every update, like on
// create; the optional fields keep their stored values when absent or
// empty. Credentials cannot be changed through updates.
type UpdateContactRequest struct {
	FirstName  string `json:"firstName"  validate:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"   validate:"required"`
	DOB        string `json:"dob"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"required"`
	Occupation string `json:"occupation"`
	Company    string `json:"company"`
}

// LoginRequest defines the payload for the login endpoint. The password
// is checked for presence only; its length was vetted at registration,
// and any mismatch must surface as a credential failure, not a
// validation one.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
