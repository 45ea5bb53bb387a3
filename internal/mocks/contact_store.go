// Package mocks provides hand-rolled test doubles for the service and
// handler tests.
package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/evanfield/contactdir/internal/domain"
	"github.com/evanfield/contactdir/internal/store"
)

// MockContactStore implements store.ContactStore for testing. By default it
// behaves like an in-memory directory keyed by email; individual methods can
// be overridden through the function fields.
type MockContactStore struct {
	CreateFn     func(ctx context.Context, contact *domain.Contact) error
	ListFn       func(ctx context.Context) ([]*domain.Contact, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Contact, error)
	GetByPhoneFn func(ctx context.Context, phone string) (*domain.Contact, error)
	UpdateFn     func(ctx context.Context, contact *domain.Contact) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Contacts is the in-memory data behind the default implementations,
	// keyed by email.
	Contacts map[string]*domain.Contact

	// Forced errors for the default implementations.
	CreateError error
	ListError   error
}

// NewMockContactStore creates a new mock store with initialized defaults.
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[string]*domain.Contact),
	}
}

var _ store.ContactStore = (*MockContactStore)(nil)

// Create implements the ContactStore interface.
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Contacts[contact.Email]; exists {
		return store.ErrEmailExists
	}
	for _, existing := range m.Contacts {
		if existing.Phone == contact.Phone {
			return store.ErrPhoneExists
		}
	}

	clone := *contact
	m.Contacts[contact.Email] = &clone
	return nil
}

// List implements the ContactStore interface.
func (m *MockContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	contacts := make([]*domain.Contact, 0, len(m.Contacts))
	for _, contact := range m.Contacts {
		contacts = append(contacts, contact)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.Before(contacts[j].CreatedAt)
	})
	return contacts, nil
}

// GetByID implements the ContactStore interface.
func (m *MockContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, contact := range m.Contacts {
		if contact.ID == id {
			return contact, nil
		}
	}
	return nil, store.ErrContactNotFound
}

// GetByEmail implements the ContactStore interface.
func (m *MockContactStore) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	contact, exists := m.Contacts[email]
	if !exists {
		return nil, store.ErrContactNotFound
	}
	return contact, nil
}

// GetByPhone implements the ContactStore interface.
func (m *MockContactStore) GetByPhone(ctx context.Context, phone string) (*domain.Contact, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}

	for _, contact := range m.Contacts {
		if contact.Phone == phone {
			return contact, nil
		}
	}
	return nil, store.ErrContactNotFound
}

// Update implements the ContactStore interface.
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	for email, existing := range m.Contacts {
		if existing.ID == contact.ID {
			delete(m.Contacts, email)
			clone := *contact
			m.Contacts[contact.Email] = &clone
			return nil
		}
	}
	return store.ErrContactNotFound
}

// Delete implements the ContactStore interface.
func (m *MockContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for email, contact := range m.Contacts {
		if contact.ID == id {
			delete(m.Contacts, email)
			return nil
		}
	}
	return store.ErrContactNotFound
}

// WithTx implements the ContactStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return m
}
