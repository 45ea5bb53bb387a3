// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/evanfield/contactdir/internal/domain"
	"github.com/evanfield/contactdir/internal/platform/logger"
	"github.com/evanfield/contactdir/internal/store"
)

// ContactStore implements the store.ContactStore interface using a
// PostgreSQL database as the storage backend. The contacts table carries
// real unique constraints on email and phone, so concurrent creates racing
// past the service-level existence checks still cannot violate uniqueness;
// the constraint signal is mapped back to the duplicate sentinels.
type ContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewContactStore creates a new PostgreSQL implementation of the
// ContactStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewContactStore(db store.DBTX, log *slog.Logger) *ContactStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &ContactStore{
		db:     db,
		logger: log.With(slog.String("component", "contact_store")),
	}
}

// Ensure ContactStore implements store.ContactStore interface
var _ store.ContactStore = (*ContactStore)(nil)

const contactColumns = `id, first_name, middle_name, last_name, dob, email,
	phone, occupation, company, hashed_password, created_at, updated_at`

// Create implements store.ContactStore.Create
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	query := `
		INSERT INTO contacts (id, first_name, middle_name, last_name, dob,
			email, phone, occupation, company, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		contact.ID,
		contact.FirstName,
		contact.MiddleName,
		contact.LastName,
		contact.DOB,
		contact.Email,
		contact.Phone,
		contact.Occupation,
		contact.Company,
		contact.HashedPassword,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Debug("unique constraint violation during contact creation",
				slog.String("error", err.Error()),
				slog.String("contact_id", contact.ID.String()))
			return mapped
		}

		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return mapped
	}

	log.Debug("contact created",
		slog.String("contact_id", contact.ID.String()))
	return nil
}

// List implements store.ContactStore.List
func (s *ContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list contacts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows.Scan)
		if err != nil {
			log.Error("failed to scan contact row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		log.Error("row iteration failed", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return contacts, nil
}

// GetByID implements store.ContactStore.GetByID
func (s *ContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetByEmail implements store.ContactStore.GetByEmail
func (s *ContactStore) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = $1`
	return s.getOne(ctx, query, email)
}

// GetByPhone implements store.ContactStore.GetByPhone
func (s *ContactStore) GetByPhone(ctx context.Context, phone string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE phone = $1`
	return s.getOne(ctx, query, phone)
}

// getOne runs a single-row lookup and maps the no-rows case to the
// contact-specific not found sentinel.
func (s *ContactStore) getOne(ctx context.Context, query string, arg any) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, query, arg)
	contact, err := scanContact(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return contact, nil
}

// Update implements store.ContactStore.Update
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during update",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	query := `
		UPDATE contacts
		SET first_name = $2, middle_name = $3, last_name = $4, dob = $5,
			email = $6, phone = $7, occupation = $8, company = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		contact.ID,
		contact.FirstName,
		contact.MiddleName,
		contact.LastName,
		contact.DOB,
		contact.Email,
		contact.Phone,
		contact.Occupation,
		contact.Company,
		contact.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Debug("unique constraint violation during contact update",
				slog.String("error", err.Error()),
				slog.String("contact_id", contact.ID.String()))
			return mapped
		}

		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, "contact"); err != nil {
		return store.ErrContactNotFound
	}

	log.Debug("contact updated",
		slog.String("contact_id", contact.ID.String()))
	return nil
}

// Delete implements store.ContactStore.Delete
func (s *ContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "contact"); err != nil {
		return store.ErrContactNotFound
	}

	log.Debug("contact deleted", slog.String("contact_id", id.String()))
	return nil
}

// WithTx implements store.ContactStore.WithTx
func (s *ContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &ContactStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanContact populates a Contact from a row scan function, shared by the
// single-row and multi-row read paths.
func scanContact(scan func(dest ...any) error) (*domain.Contact, error) {
	var contact domain.Contact
	err := scan(
		&contact.ID,
		&contact.FirstName,
		&contact.MiddleName,
		&contact.LastName,
		&contact.DOB,
		&contact.Email,
		&contact.Phone,
		&contact.Occupation,
		&contact.Company,
		&contact.HashedPassword,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
