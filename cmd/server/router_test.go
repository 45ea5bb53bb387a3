package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanfield/contactdir/internal/config"
	"github.com/evanfield/contactdir/internal/mocks"
	"github.com/evanfield/contactdir/internal/service"
)

func newTestApplication(requireAuth bool) *application {
	svc := service.NewContactService(
		mocks.NewMockContactStore(),
		nil,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		slog.Default(),
	)

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
			Auth:   config.AuthConfig{RequireAuth: requireAuth},
		},
		logger:         slog.Default(),
		contactService: svc,
		jwtService:     &mocks.MockJWTService{},
	}
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	app := newTestApplication(false)
	router := app.setupRouter()

	t.Run("health check", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("list contacts", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Contacts retrieved")
	})

	t.Run("create contact", func(t *testing.T) {
		body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phone":"555-0100","password":"secret1"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "New contact created")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestRouterRequireAuthGatesMutations(t *testing.T) {
	t.Parallel()

	app := newTestApplication(true)
	router := app.setupRouter()

	// mutating routes demand a token
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodDelete, "/c0ffee00-0000-4000-8000-000000000000", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(
		http.MethodPut, "/c0ffee00-0000-4000-8000-000000000000", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// reads and creation stay public
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phone":"555-0100","password":"secret1"}`
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
}
