package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "no trace ID before SetTraceID")

	ctx = SetTraceID(ctx)
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2, "trace ID is hex encoded")

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other, "trace IDs are unique per request")
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/contacts", nil)

	RespondWithJSON(w, r, http.StatusOK, Envelope{
		Message: "Contacts retrieved",
		Data:    []string{},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Contacts retrieved", body.Message)
	assert.Empty(t, body.Token)
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/contacts/abc", nil)
	r = r.WithContext(SetTraceID(r.Context()))

	RespondWithError(w, r, http.StatusNotFound, "Contact not found")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Contact not found", body.Error)
	assert.NotEmpty(t, body.TraceID)
	assert.Empty(t, body.Errors)
}

func TestRespondWithFieldErrors(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/contacts", nil)

	RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation failed", []FieldError{
		{Field: "email", Msg: "Please include a valid email"},
	})

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var dst struct {
		Email string `json:"email"`
	}

	r := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"a@b.co","bogus":true}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"a@b.co"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "a@b.co", dst.Email)
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type req struct {
		Email string `validate:"required,email"`
	}

	assert.Error(t, ValidateRequest(req{Email: "not-an-email"}))
	assert.NoError(t, ValidateRequest(req{Email: "a@b.co"}))
}
