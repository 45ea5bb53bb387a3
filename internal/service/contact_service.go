// Package service contains the application services that orchestrate
// validation, credential handling and persistence for each operation.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/evanfield/contactdir/internal/domain"
	"github.com/evanfield/contactdir/internal/service/auth"
	"github.com/evanfield/contactdir/internal/store"
)

// CreateContactParams carries the fields accepted when creating a contact.
// Password is plaintext at this point; it is hashed before anything is
// persisted.
type CreateContactParams struct {
	FirstName  string
	MiddleName string
	LastName   string
	DOB        string
	Email      string
	Phone      string
	Occupation string
	Company    string
	Password   string
}

// UpdateContactParams carries the fields accepted when updating a contact.
// An empty string means "leave this field unchanged"; clearing a stored
// value is not expressible through update. The password is never updatable
// here.
type UpdateContactParams struct {
	FirstName  string
	MiddleName string
	LastName   string
	DOB        string
	Email      string
	Phone      string
	Occupation string
	Company    string
}

// ContactService provides the six operations of the contacts directory.
type ContactService interface {
	// CreateContact registers a new contact after enforcing email and phone
	// uniqueness, hashes the password, and issues a bearer token for the new
	// record. Returns store.ErrEmailExists or store.ErrPhoneExists on
	// duplicates.
	CreateContact(ctx context.Context, params CreateContactParams) (*domain.Contact, string, error)

	// ListContacts returns every stored contact.
	ListContacts(ctx context.Context) ([]*domain.Contact, error)

	// GetContact retrieves one contact by its ID. A malformed ID is treated
	// as a lookup miss, not a validation error.
	GetContact(ctx context.Context, id string) (*domain.Contact, error)

	// UpdateContact applies the non-empty fields of params to the contact
	// and returns the post-update record.
	UpdateContact(ctx context.Context, id string, params UpdateContactParams) (*domain.Contact, error)

	// DeleteContact permanently removes a contact.
	DeleteContact(ctx context.Context, id string) error

	// Login verifies the email/password pair and issues a bearer token.
	// Returns ErrInvalidCredentials for unknown emails and wrong passwords
	// alike.
	Login(ctx context.Context, email, password string) (*domain.Contact, string, error)
}

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contactStore store.ContactStore
	db           *sql.DB
	jwtService   auth.JWTService
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	logger       *slog.Logger
}

// NewContactService creates a new ContactService. db may be nil in tests,
// in which case operations run directly against the store without a
// wrapping transaction.
func NewContactService(
	contactStore store.ContactStore,
	db *sql.DB,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *ContactServiceImpl {
	return &ContactServiceImpl{
		contactStore: contactStore,
		db:           db,
		jwtService:   jwtService,
		hasher:       hasher,
		verifier:     verifier,
		logger:       logger.With("component", "contact_service"),
	}
}

var _ ContactService = (*ContactServiceImpl)(nil)

// CreateContact implements ContactService.CreateContact.
//
// The duplicate pre-checks give the caller a definite "which field clashed"
// answer before any write happens. They are check-then-act and therefore
// racy on their own; the insert runs in the same transaction and the store's
// unique constraints return the same sentinels, so a race loser still fails
// with the right duplicate error instead of corrupting the directory.
func (s *ContactServiceImpl) CreateContact(
	ctx context.Context,
	params CreateContactParams,
) (*domain.Contact, string, error) {
	contact, err := domain.NewContact(
		params.FirstName,
		params.MiddleName,
		params.LastName,
		params.DOB,
		params.Email,
		params.Phone,
		params.Occupation,
		params.Company,
		params.Password,
	)
	if err != nil {
		s.logger.Debug("rejected invalid contact data",
			"error", err,
			"email", params.Email)
		return nil, "", err
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	contact.HashedPassword = hashed
	contact.Password = ""

	err = s.inTransaction(ctx, func(cs store.ContactStore) error {
		if _, err := cs.GetByEmail(ctx, params.Email); err == nil {
			return store.ErrEmailExists
		} else if !errors.Is(err, store.ErrContactNotFound) {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}

		if _, err := cs.GetByPhone(ctx, params.Phone); err == nil {
			return store.ErrPhoneExists
		} else if !errors.Is(err, store.ErrContactNotFound) {
			return fmt.Errorf("failed to check phone uniqueness: %w", err)
		}

		return cs.Create(ctx, contact)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("duplicate contact rejected",
				"error", err,
				"email", params.Email)
		} else {
			s.logger.Error("failed to create contact",
				"error", err,
				"email", params.Email)
		}
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(ctx, contact.ID)
	if err != nil {
		s.logger.Error("failed to issue token for new contact",
			"error", err,
			"contact_id", contact.ID)
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("contact created",
		"contact_id", contact.ID,
		"email", contact.Email)
	return contact, token, nil
}

// ListContacts implements ContactService.ListContacts.
func (s *ContactServiceImpl) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.contactStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list contacts", "error", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// GetContact implements ContactService.GetContact.
func (s *ContactServiceImpl) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	contactID, err := parseContactID(id)
	if err != nil {
		return nil, err
	}

	contact, err := s.contactStore.GetByID(ctx, contactID)
	if err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to get contact",
				"error", err,
				"contact_id", id)
		}
		return nil, err
	}

	return contact, nil
}

// UpdateContact implements ContactService.UpdateContact. It loads the full
// record, overlays the supplied fields, and writes the complete contact
// back, so the hash and ID can never change through this path.
func (s *ContactServiceImpl) UpdateContact(
	ctx context.Context,
	id string,
	params UpdateContactParams,
) (*domain.Contact, error) {
	contactID, err := parseContactID(id)
	if err != nil {
		return nil, err
	}

	contact, err := s.contactStore.GetByID(ctx, contactID)
	if err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to load contact for update",
				"error", err,
				"contact_id", id)
		}
		return nil, err
	}

	applyUpdate(contact, params)
	contact.UpdatedAt = time.Now().UTC()

	if err := s.contactStore.Update(ctx, contact); err != nil {
		if store.IsDuplicateError(err) || errors.Is(err, store.ErrContactNotFound) {
			s.logger.Debug("contact update rejected",
				"error", err,
				"contact_id", id)
		} else {
			s.logger.Error("failed to update contact",
				"error", err,
				"contact_id", id)
		}
		return nil, err
	}

	s.logger.Info("contact updated", "contact_id", contact.ID)
	return contact, nil
}

// DeleteContact implements ContactService.DeleteContact.
func (s *ContactServiceImpl) DeleteContact(ctx context.Context, id string) error {
	contactID, err := parseContactID(id)
	if err != nil {
		return err
	}

	if err := s.contactStore.Delete(ctx, contactID); err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to delete contact",
				"error", err,
				"contact_id", id)
		}
		return err
	}

	s.logger.Info("contact deleted", "contact_id", contactID)
	return nil
}

// Login implements ContactService.Login.
func (s *ContactServiceImpl) Login(ctx context.Context, email, password string) (*domain.Contact, string, error) {
	contact, err := s.contactStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			// Same failure as a wrong password: callers must not learn
			// whether the email is registered.
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("failed to look up contact for login",
			"error", err,
			"email", email)
		return nil, "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(contact.HashedPassword, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, contact.ID)
	if err != nil {
		s.logger.Error("failed to issue token on login",
			"error", err,
			"contact_id", contact.ID)
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("contact logged in", "contact_id", contact.ID)
	return contact, token, nil
}

// inTransaction runs fn against a transaction-bound store when a database
// handle is available. Without one (unit tests with a mock store) fn runs
// against the base store directly.
func (s *ContactServiceImpl) inTransaction(ctx context.Context, fn func(cs store.ContactStore) error) error {
	if s.db == nil {
		return fn(s.contactStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(s.contactStore.WithTx(tx))
	})
}

// parseContactID converts a path ID into a UUID. Malformed IDs read as
// "no such contact" rather than a separate validation failure.
func parseContactID(id string) (uuid.UUID, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, store.ErrContactNotFound
	}
	return contactID, nil
}

// applyUpdate overlays the non-empty fields of params onto the contact.
// Empty strings mean "leave unchanged", mirroring how the update endpoint
// has always treated absent values.
func applyUpdate(contact *domain.Contact, params UpdateContactParams) {
	if params.FirstName != "" {
		contact.FirstName = params.FirstName
	}
	if params.MiddleName != "" {
		contact.MiddleName = params.MiddleName
	}
	if params.LastName != "" {
		contact.LastName = params.LastName
	}
	if params.DOB != "" {
		contact.DOB = params.DOB
	}
	if params.Email != "" {
		contact.Email = params.Email
	}
	if params.Phone != "" {
		contact.Phone = params.Phone
	}
	if params.Occupation != "" {
		contact.Occupation = params.Occupation
	}
	if params.Company != "" {
		contact.Company = params.Company
	}
}
