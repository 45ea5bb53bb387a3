package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/evanfield/contactdir/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name: "wrapped no rows maps to not found",
			err:  fmt.Errorf("query failed: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name: "email unique violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "contacts_email_key",
			},
			wantErr: store.ErrEmailExists,
		},
		{
			name: "phone unique violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "contacts_phone_key",
			},
			wantErr: store.ErrPhoneExists,
		},
		{
			name: "unknown unique violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "contacts_pkey",
			},
			wantErr: store.ErrDuplicate,
		},
		{
			name: "not null violation",
			err: &pgconn.PgError{
				Code:       notNullViolationCode,
				ColumnName: "email",
			},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name: "check violation",
			err: &pgconn.PgError{
				Code:           checkViolationCode,
				ConstraintName: "contacts_email_check",
			},
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.wantErr)
		})
	}
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	original := errors.New("connection reset")
	assert.Equal(t, original, MapError(original))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	unique := &pgconn.PgError{Code: uniqueViolationCode}
	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}
