// Package session holds the client's authenticated identity between
// requests and across process restarts.
//
// The in-memory state mirrors what the UI needs to render: the current user,
// the bearer token, whether the client is authenticated, and a transient
// loading flag. Everything except the loading flag is persisted through a
// [store.SessionRepository]; a restore after restart therefore always begins
// with IsLoading reset to false.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dario.cat/mergo"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/models"
)

// Store is the concurrency-safe session holder.
type Store struct {
	mu      sync.RWMutex
	current models.Session

	repository store.SessionRepository
	logger     *logger.Logger
}

// NewStore constructs a session store backed by the given repository.
func NewStore(repository store.SessionRepository, logger *logger.Logger) *Store {
	return &Store{
		repository: repository,
		logger:     logger,
	}
}

// Restore rehydrates the session from local storage. A missing persisted
// session is not an error: the store simply stays logged out.
func (s *Store) Restore(ctx context.Context) error {
	persisted, err := s.repository.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.current = persisted
	s.current.IsLoading = false
	s.mu.Unlock()

	return nil
}

// Login records a successful authentication and persists it.
func (s *Store) Login(ctx context.Context, user models.PublicUser, token string) error {
	s.mu.Lock()
	s.current = models.Session{
		User:            &user,
		Token:           token,
		IsAuthenticated: true,
	}
	snapshot := s.current
	s.mu.Unlock()

	if err := s.repository.SaveSession(ctx, snapshot); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info().Int64("id", user.UserID).Str("role", user.Role.String()).Msg("session established")
	return nil
}

// Logout clears the session and removes the persisted row.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()

	if err := s.repository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete persisted session: %w", err)
	}

	s.logger.Info().Msg("session cleared")
	return nil
}

// UpdateUser merges the non-empty fields of a user projection (e.g. from
// GET /api/users/me) into the held user without touching the token, and
// persists the change. With no user held the call is a no-op.
func (s *Store) UpdateUser(ctx context.Context, user models.PublicUser) error {
	s.mu.Lock()
	if s.current.User == nil {
		s.mu.Unlock()
		return nil
	}

	merged := *s.current.User
	if err := mergo.Merge(&merged, user, mergo.WithOverride); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("merge user: %w", err)
	}
	s.current.User = &merged
	snapshot := s.current
	s.mu.Unlock()

	if err := s.repository.SaveSession(ctx, snapshot); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// Current returns a copy of the session state.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the held bearer token, or an empty string when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// IsAuthenticated reports whether a login has completed.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAuthenticated
}

// IsLoading reports whether an auth operation is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsLoading
}

// SetLoading flips the transient loading flag. The flag is never persisted.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.current.IsLoading = loading
	s.mu.Unlock()
}

// Role returns the current user's role, or the empty role when logged out.
func (s *Store) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current.User == nil {
		return ""
	}
	return s.current.User.Role
}

// HasRole reports whether the authenticated user holds exactly the given role.
func (s *Store) HasRole(role models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAuthenticated && s.current.User != nil && s.current.User.Role == role
}

// HasAnyRole reports whether the authenticated user's role is in allowed.
func (s *Store) HasAnyRole(allowed ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.IsAuthenticated || s.current.User == nil {
		return false
	}
	return s.current.User.Role.In(allowed)
}
