package service

import (
	"context"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/internal/validators"
	"github.com/mkarev/go-school-admin/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository   store.UserRepository
	schoolRepository store.SchoolRepository
	validator        validators.Validator
	bcryptCost       int
	logger           *logger.Logger
}

// NewUserService constructs a UserService wired to the given repositories.
func NewUserService(userRepository store.UserRepository, schoolRepository store.SchoolRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		schoolRepository: schoolRepository,
		validator:        validators.NewRequestValidator(),
		bcryptCost:       cfg.BcryptCost,
		logger:           logger,
	}
}

// CreateUser provisions a subordinate account with the given fixed role on
// behalf of callerID. The caller's permission to create this role has already
// been checked at the transport layer; this method records the provenance via
// CreatedBy and refuses only structurally invalid input.
//
// When the request binds the account to a school, the school must exist.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the request body fails validation or the
//     role is not one of the closed set.
//   - store.ErrSchoolNotFound (wrapped) if SchoolID references a missing school.
//   - A wrapped storage error on any repository failure (e.g.
//     store.ErrEmailAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, callerID int64, role models.Role, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if !role.Valid() {
		log.Error().Str("role", role.String()).Msg("unknown role requested")
		return models.User{}, fmt.Errorf("%w: unsupported role %q", ErrInvalidDataProvided, role)
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if req.SchoolID != nil {
		if _, err := s.schoolRepository.FindSchoolByID(ctx, *req.SchoolID); err != nil {
			log.Err(err).Int64("school_id", *req.SchoolID).Msg("school lookup failed")
			return models.User{}, fmt.Errorf("school lookup failed: %w", err)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		SchoolID:     req.SchoolID,
		CreatedBy:    &callerID,
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Str("role", role.String()).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().
		Int64("id", createdUser.UserID).
		Str("role", role.String()).
		Int64("created_by", callerID).
		Msg("user created")

	return createdUser, nil
}

// GetUserByID returns the account with the given id.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ListUsers returns the accounts matching the filter.
func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if filter.Role != "" && !filter.Role.Valid() {
		log.Error().Str("role", filter.Role.String()).Msg("unknown role filter")
		return nil, fmt.Errorf("%w: unsupported role filter %q", ErrInvalidDataProvided, filter.Role)
	}

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
