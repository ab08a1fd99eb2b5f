package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/models"
)

// schoolRepository is the PostgreSQL-backed implementation of [SchoolRepository].
type schoolRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSchoolRepository constructs a [SchoolRepository] backed by the provided
// database connection and logger.
func NewSchoolRepository(db *DB, logger *logger.Logger) SchoolRepository {
	logger.Debug().Msg("creating school repository")
	return &schoolRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSchool persists a new school and returns it with server-assigned
// fields (SchoolID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSchoolAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *schoolRepository) CreateSchool(ctx context.Context, school models.School) (models.School, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSchool, school.Name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*schoolRepository.CreateSchool").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.School{}, ErrSchoolAlreadyExists
		default:
			return models.School{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&school.SchoolID, &school.Name, &school.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.School{}, ErrSchoolAlreadyExists
		}
		log.Err(err).Str("func", "*schoolRepository.CreateSchool").Msg("error: scanning error")
		return models.School{}, err
	}

	return school, nil
}

// FindSchoolByID retrieves the school with the given id. An empty result set
// maps to [ErrSchoolNotFound].
func (r *schoolRepository) FindSchoolByID(ctx context.Context, schoolID int64) (models.School, error) {
	log := logger.FromContext(ctx)

	var school models.School
	row := r.db.QueryRowContext(ctx, findSchoolByID, schoolID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*schoolRepository.FindSchoolByID").Msg("error: row is nil")
		return models.School{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&school.SchoolID, &school.Name, &school.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.School{}, ErrSchoolNotFound
		}
		log.Err(err).Str("func", "*schoolRepository.FindSchoolByID").Msg("error: scanning error")
		return models.School{}, err
	}

	return school, nil
}
