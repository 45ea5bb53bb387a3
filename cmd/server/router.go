package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/evanfield/contactdir/internal/api"
	apimiddleware "github.com/evanfield/contactdir/internal/api/middleware"
)

// setupRouter builds the HTTP routing table. Reads stay public; when
// RequireAuth is set, mutating routes demand a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	contactHandler := api.NewContactHandler(app.contactService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Post("/login", contactHandler.Login)
	r.Get("/", contactHandler.List)
	r.Get("/{id}", contactHandler.Get)

	r.Group(func(r chi.Router) {
		if app.config.Auth.RequireAuth {
			r.Use(authMiddleware.Authenticate)
		}
		r.Put("/{id}", contactHandler.Update)
		r.Delete("/{id}", contactHandler.Delete)
	})

	// Creation stays public even under RequireAuth: a new contact has no
	// token to present yet.
	r.Post("/", contactHandler.Create)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
