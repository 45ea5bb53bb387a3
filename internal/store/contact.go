package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/evanfield/contactdir/internal/domain"
)

// ContactStore defines the interface for contact data persistence.
type ContactStore interface {
	// Create saves a new contact to the store. The contact must already
	// carry a hashed password; plaintext credentials are never persisted.
	// Returns ErrEmailExists or ErrPhoneExists when a unique field is taken.
	// Returns validation errors from the domain Contact if data is invalid.
	Create(ctx context.Context, contact *domain.Contact) error

	// List retrieves every contact in the store, oldest first.
	List(ctx context.Context) ([]*domain.Contact, error)

	// GetByID retrieves a contact by its unique ID.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// GetByEmail retrieves a contact by its email address.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Contact, error)

	// GetByPhone retrieves a contact by its phone number.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByPhone(ctx context.Context, phone string) (*domain.Contact, error)

	// Update replaces the mutable fields of an existing contact. The caller
	// MUST provide a complete contact object; the hashed password and ID are
	// never changed by this operation.
	// Returns ErrContactNotFound if the contact does not exist.
	// Returns ErrEmailExists or ErrPhoneExists when moving to a taken value.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes a contact from the store by its ID.
	// Returns ErrContactNotFound if the contact does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ContactStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) ContactStore
}
