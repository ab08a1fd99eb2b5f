// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/mkarev/go-school-admin/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, role, school_id, created_by)
    VALUES ($1, lower($2), $3, $4, $5, $6)
    RETURNING user_id, name, email, password_hash, role, school_id, created_by, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, school_id, created_by, created_at, updated_at
    FROM users
    WHERE email = lower($1);`

	findUserByID = `SELECT user_id, name, email, password_hash, role, school_id, created_by, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createSchool = `INSERT INTO schools (name)
    VALUES ($1)
    RETURNING school_id, name, created_at;`

	findSchoolByID = `SELECT school_id, name, created_at
    FROM schools
    WHERE school_id = $1;`
)

// userColumns lists every persisted column of the "users" table in scan order.
var userColumns = []string{
	"user_id",
	"name",
	"email",
	"password_hash",
	"role",
	"school_id",
	"created_by",
	"created_at",
	"updated_at",
}

// buildListUsersQuery assembles the filtered user listing SELECT. Zero-valued
// filter fields are skipped, so an empty filter lists every user ordered by id.
func buildListUsersQuery(_ context.Context, filter models.UserFilter) (string, []any, error) {
	builder := sq.
		Select(userColumns...).
		From("users").
		OrderBy("user_id ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.Role != "" {
		builder = builder.Where(sq.Eq{"role": string(filter.Role)})
	}
	if filter.SchoolID != nil {
		builder = builder.Where(sq.Eq{"school_id": *filter.SchoolID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	return builder.ToSql()
}
