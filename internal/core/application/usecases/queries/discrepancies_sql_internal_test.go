package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscrepanciesSQL(t *testing.T) {
	sqlStr, args, err := discrepanciesSQL()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "LEFT JOIN orders o ON o.partner_public_id = p.public_id AND o.status IN (?, ?, ?, ?)")
	assert.Contains(t, sqlStr, "GROUP BY p.public_id, p.credit_used")
	assert.Contains(t, sqlStr, "HAVING p.credit_used <> COALESCE(SUM(o.total_amount), 0)")
	assert.Equal(t, []any{"APPROVED", "PROCESSING", "SHIPPED", "DELIVERED"}, args)
}
