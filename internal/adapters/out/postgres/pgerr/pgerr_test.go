package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"orderhub/internal/adapters/out/postgres/pgerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	lockErr := fmt.Errorf("select: %w", &pgconn.PgError{Code: "55P03"})
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_partners_tax_id"}
	checkErr := &pgconn.PgError{Code: "23514", ConstraintName: "chk_partners_credit_used"}
	plain := errors.New("connection reset")

	assert.True(t, pgerr.IsLockNotAvailable(lockErr))
	assert.False(t, pgerr.IsLockNotAvailable(uniqueErr))

	assert.True(t, pgerr.IsUniqueViolation(uniqueErr))
	assert.Equal(t, "idx_partners_tax_id", pgerr.Constraint(uniqueErr))

	assert.False(t, pgerr.IsUniqueViolation(checkErr))
	assert.Equal(t, "23514", pgerr.Code(checkErr))

	assert.Empty(t, pgerr.Code(plain))
	assert.Empty(t, pgerr.Constraint(plain))
	assert.False(t, pgerr.IsUniqueViolation(nil))
}
