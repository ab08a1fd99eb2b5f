package service

import (
	"context"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/adapter"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/models"
)

type clientAuthService struct {
	sessions *session.Store
	adapter  adapter.ServerAdapter
}

func NewClientAuthService(sessions *session.Store, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter}
}

// RegisterAdmin registers a bootstrap admin on the server and, on success,
// stores the returned user and token as the active session. The loading flag
// is raised for the duration of the round trip.
func (a *clientAuthService) RegisterAdmin(ctx context.Context, req models.CreateUserRequest) error {
	a.sessions.SetLoading(true)
	defer a.sessions.SetLoading(false)

	resp, err := a.adapter.RegisterAdmin(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err = a.sessions.Login(ctx, resp.User, resp.Token); err != nil {
		return fmt.Errorf("store session after registration: %w", err)
	}

	return nil
}

// Login authenticates on the server and, on success, stores the returned user
// and token as the active session.
func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) error {
	a.sessions.SetLoading(true)
	defer a.sessions.SetLoading(false)

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return mapAdapterError(err)
	}

	if err = a.sessions.Login(ctx, resp.User, resp.Token); err != nil {
		return fmt.Errorf("store session after login: %w", err)
	}

	return nil
}

// Logout drops the local session and the adapter's held token.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

// Restore rehydrates the persisted session and re-arms the adapter with the
// stored token so authenticated calls work immediately after restart.
func (a *clientAuthService) Restore(ctx context.Context) error {
	if err := a.sessions.Restore(ctx); err != nil {
		return err
	}

	if token := a.sessions.Token(); token != "" {
		a.adapter.SetToken(token)
	}

	return nil
}
