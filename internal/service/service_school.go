package service

import (
	"context"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/internal/validators"
	"github.com/mkarev/go-school-admin/models"
)

// schoolService is the concrete implementation of SchoolService.
type schoolService struct {
	schoolRepository store.SchoolRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewSchoolService constructs a SchoolService wired to the given repository.
func NewSchoolService(schoolRepository store.SchoolRepository, logger *logger.Logger) SchoolService {
	return &schoolService{
		schoolRepository: schoolRepository,
		validator:        validators.NewRequestValidator(),
		logger:           logger,
	}
}

// CreateSchool registers a new tenant.
//
// Returns the persisted school or:
//   - ErrInvalidDataProvided if the name is missing.
//   - A wrapped storage error (e.g. store.ErrSchoolAlreadyExists).
func (s *schoolService) CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.School, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid school data provided")
		return models.School{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	school, err := s.schoolRepository.CreateSchool(ctx, models.School{Name: req.Name})
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("school creation ended with error")
		return models.School{}, fmt.Errorf("school creation ended with error: %w", err)
	}

	log.Info().Int64("id", school.SchoolID).Str("name", school.Name).Msg("school created")

	return school, nil
}

// GetSchoolByID returns the school with the given id.
func (s *schoolService) GetSchoolByID(ctx context.Context, schoolID int64) (models.School, error) {
	log := logger.FromContext(ctx)

	school, err := s.schoolRepository.FindSchoolByID(ctx, schoolID)
	if err != nil {
		log.Err(err).Int64("id", schoolID).Msg("school search by id failed")
		return models.School{}, fmt.Errorf("school search by id failed: %w", err)
	}

	return school, nil
}
