package store

import (
	"context"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [SessionRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// SessionRepository is the SQLite-backed repository for the persisted
	// authentication session.
	SessionRepository SessionRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in
//     cfg.SessionPath, creating the database file if it does not yet exist.
//  2. Ensures the session schema exists.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SessionRepository].
//
// Returns an error if the database connection cannot be established.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.SessionPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
	}, nil
}
