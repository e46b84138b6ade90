package order_test

import (
	"strings"
	"testing"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, product string, qty int, unitPrice string) order.Item {
	t.Helper()

	item, err := order.NewItem(product, qty, kernel.MustMoneyFromString(unitPrice))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should compute the subtotal", func(t *testing.T) {
		item, err := order.NewItem("Steel beam", 3, kernel.MustMoneyFromString("1000.00"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Steel beam", item.Product())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "3000.00", item.Subtotal().String())
	})

	t.Run("should round the subtotal half-up to two places", func(t *testing.T) {
		tests := []struct {
			price string
			qty   int
			want  string
		}{
			{"0.3333", 3, "1.00"},
			{"10.0050", 1, "10.01"},
			{"2.0025", 2, "4.01"},
			{"1.1111", 9, "10.00"},
			{"0.0001", 1, "0.00"},
		}

		for _, tt := range tests {
			item := mustItem(t, "x", tt.qty, tt.price)
			assert.Equal(t, tt.want, item.Subtotal().String(), "%s x %d", tt.price, tt.qty)
		}
	})

	t.Run("should fail with every invalid field", func(t *testing.T) {
		_, err := order.NewItem("", 0, kernel.ZeroMoney())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "product")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unit price")
	})

	t.Run("should reject too long product names", func(t *testing.T) {
		_, err := order.NewItem(strings.Repeat("p", 101), 1, kernel.MoneyFromInt(1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject more than four decimal places", func(t *testing.T) {
		_, err := order.NewItem("x", 1, kernel.MustMoneyFromString("1.00001"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, order.Item{}.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestRecalculateTotal(t *testing.T) {
	t.Run("empty list totals zero", func(t *testing.T) {
		assert.Equal(t, "0.00", order.RecalculateTotal(nil).String())
	})

	t.Run("sums rounded subtotals", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "a", 3, "0.3333"),
			mustItem(t, "b", 1, "0.0050"),
			mustItem(t, "c", 2, "1500.00"),
		}

		// 1.00 + 0.01 + 3000.00
		assert.Equal(t, "3001.01", order.RecalculateTotal(items).String())
	})

	t.Run("does not depend on any order state", func(t *testing.T) {
		items := []order.Item{mustItem(t, "a", 2, "10.00")}

		first := order.RecalculateTotal(items)
		second := order.RecalculateTotal(items)

		assert.True(t, first.Equal(second))
	})
}
