package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/models"
)

// sessionRepository is the SQLite-backed implementation of [SessionRepository].
// The session is stored as a single JSON payload so the persisted shape stays
// in lockstep with the [models.Session] json tags: fields marked json:"-"
// (IsLoading) are never written and therefore always rehydrate to their zero
// value.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the provided
// SQLite connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession serialises the session and upserts the single session row.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error encoding session")
		return fmt.Errorf("error encoding session: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, upsertSession, string(payload)); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// LoadSession reads and deserialises the persisted session row.
//
// Error handling:
//   - No persisted row → [ErrSessionNotFound].
//   - Corrupt payload → decode error returned directly.
func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var payload string
	row := r.db.QueryRowContext(ctx, selectSession)

	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error decoding session")
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}

	return session, nil
}

// DeleteSession removes the persisted session row. Deleting an absent session
// is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
