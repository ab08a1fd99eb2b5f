package service

import (
	"context"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/adapter"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/models"
)

type clientUserService struct {
	sessions *session.Store
	adapter  adapter.ServerAdapter
}

func NewClientUserService(sessions *session.Store, serverAdapter adapter.ServerAdapter) ClientUserService {
	return &clientUserService{sessions: sessions, adapter: serverAdapter}
}

// CreateSchoolAdmin provisions a school_admin account on the server.
// The client-side role check is a fast-fail convenience; the server enforces
// the same rule authoritatively.
func (u *clientUserService) CreateSchoolAdmin(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error) {
	if !u.sessions.HasAnyRole(models.AdminOnly...) {
		return models.PublicUser{}, ErrAccessDenied
	}

	resp, err := u.adapter.CreateSchoolAdmin(ctx, req)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}

	return resp.User, nil
}

// CreateTeacher provisions a teacher account on the server.
func (u *clientUserService) CreateTeacher(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error) {
	if !u.sessions.HasAnyRole(models.SchoolAdminAndAbove...) {
		return models.PublicUser{}, ErrAccessDenied
	}

	resp, err := u.adapter.CreateTeacher(ctx, req)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}

	return resp.User, nil
}

// CreateStudent provisions a student account on the server.
func (u *clientUserService) CreateStudent(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error) {
	if !u.sessions.HasAnyRole(models.SchoolAdminAndAbove...) {
		return models.PublicUser{}, ErrAccessDenied
	}

	resp, err := u.adapter.CreateStudent(ctx, req)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}

	return resp.User, nil
}

// ListUsers fetches accounts matching the filter.
func (u *clientUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	if !u.sessions.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if !u.sessions.HasAnyRole(models.SchoolAdminAndAbove...) {
		return nil, ErrAccessDenied
	}

	users, err := u.adapter.ListUsers(ctx, filter)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return users, nil
}

// RefreshMe re-fetches the caller's own account and updates the session's
// user projection.
func (u *clientUserService) RefreshMe(ctx context.Context) (models.PublicUser, error) {
	if !u.sessions.IsAuthenticated() {
		return models.PublicUser{}, ErrNotAuthenticated
	}

	me, err := u.adapter.Me(ctx)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}

	if err = u.sessions.UpdateUser(ctx, me); err != nil {
		return models.PublicUser{}, fmt.Errorf("update session user: %w", err)
	}

	return me, nil
}

type clientSchoolService struct {
	sessions *session.Store
	adapter  adapter.ServerAdapter
}

func NewClientSchoolService(sessions *session.Store, serverAdapter adapter.ServerAdapter) ClientSchoolService {
	return &clientSchoolService{sessions: sessions, adapter: serverAdapter}
}

// CreateSchool registers a new school on the server.
func (s *clientSchoolService) CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.School, error) {
	if !s.sessions.IsAuthenticated() {
		return models.School{}, ErrNotAuthenticated
	}
	if !s.sessions.HasAnyRole(models.AdminOnly...) {
		return models.School{}, ErrAccessDenied
	}

	resp, err := s.adapter.CreateSchool(ctx, req)
	if err != nil {
		return models.School{}, mapAdapterError(err)
	}

	return resp.School, nil
}
