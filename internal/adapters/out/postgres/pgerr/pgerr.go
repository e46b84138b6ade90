// Package pgerr classifies PostgreSQL errors surfaced through GORM.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this application reacts to.
const (
	CodeUniqueViolation  = "23505"
	CodeLockNotAvailable = "55P03"
)

// Code returns the SQLSTATE of err, or "" when err does not come from PostgreSQL.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Constraint returns the name of the violated constraint, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsLockNotAvailable reports a lock wait that ran into lock_timeout.
func IsLockNotAvailable(err error) bool {
	return Code(err) == CodeLockNotAvailable
}

func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}
