package store

import (
	"context"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/migrations"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	SchoolRepository SchoolRepository
}

// NewStorages initialises the server storage layer:
//  1. Connects to PostgreSQL using cfg.DB.DSN.
//  2. Runs pending schema migrations.
//  3. Constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		SchoolRepository: NewSchoolRepository(db, log),
	}, nil
}
