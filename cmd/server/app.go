package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/evanfield/contactdir/internal/config"
	"github.com/evanfield/contactdir/internal/platform/logger"
	"github.com/evanfield/contactdir/internal/platform/postgres"
	"github.com/evanfield/contactdir/internal/service"
	"github.com/evanfield/contactdir/internal/service/auth"
)

// application holds every wired dependency of the running server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *sql.DB
	contactService service.ContactService
	jwtService     auth.JWTService
}

// newApplication loads configuration and wires the full dependency
// graph: logger, database (with migrations applied), stores, auth
// services and the contact service.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"require_auth", cfg.Auth.RequireAuth)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		closeDatabase(db, log)
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	contactStore := postgres.NewContactStore(db, log)
	contactService := service.NewContactService(contactStore, db, jwtService, hasher, hasher, log)

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		contactService: contactService,
		jwtService:     jwtService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
