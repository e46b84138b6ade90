package partner_test

import (
	"strings"
	"testing"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPartner(t *testing.T, limit int64) *partner.Partner {
	t.Helper()

	taxID, err := partner.NewTaxID("12345678000195")
	require.NoError(t, err)

	p, err := partner.NewPartner(kernel.MustPublicIDFromString("PTN_00000001"), "Acme Ltda", taxID, kernel.MoneyFromInt(limit))
	require.NoError(t, err)
	return p
}

func TestNewPartner(t *testing.T) {
	validID := kernel.MustPublicIDFromString("PTN_00000001")
	validTaxID, _ := partner.NewTaxID("12345678000195")

	t.Run("should create an active partner with no credit used", func(t *testing.T) {
		p, err := partner.NewPartner(validID, "Acme Ltda", validTaxID, kernel.MoneyFromInt(10000))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Acme Ltda", p.Name())
		assert.True(t, p.IsActive())
		assert.True(t, p.CreditUsed().IsZero())
		assert.Equal(t, "10000.00", p.AvailableCredit().String())
		assert.False(t, p.CreatedAt().IsZero())
	})

	t.Run("should aggregate all validation errors", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.PublicID{}, "", partner.TaxID{}, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "credit limit")
	})

	t.Run("should reject names over 100 characters", func(t *testing.T) {
		_, err := partner.NewPartner(validID, strings.Repeat("a", 101), validTaxID, kernel.MoneyFromInt(1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a limit with sub-cent precision", func(t *testing.T) {
		_, err := partner.NewPartner(validID, "Acme", validTaxID, kernel.MustMoneyFromString("10.001"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestorePartner(t *testing.T) {
	id := kernel.MustPublicIDFromString("PTN_00000001")
	taxID, _ := partner.NewTaxID("12345678000195")
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should restore persisted state", func(t *testing.T) {
		p, err := partner.RestorePartner(id, "Acme", taxID,
			kernel.MoneyFromInt(10000), kernel.MoneyFromInt(2500), false, created, created)

		require.NoError(t, err)
		assert.False(t, p.IsActive())
		assert.Equal(t, "7500.00", p.AvailableCredit().String())
		assert.Equal(t, created, p.CreatedAt())
	})

	t.Run("should reject credit used above the limit", func(t *testing.T) {
		_, err := partner.RestorePartner(id, "Acme", taxID,
			kernel.MoneyFromInt(100), kernel.MoneyFromInt(101), true, created, created)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative credit used", func(t *testing.T) {
		_, err := partner.RestorePartner(id, "Acme", taxID,
			kernel.MoneyFromInt(100), kernel.MoneyFromInt(-1), true, created, created)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPartner_Reserve(t *testing.T) {
	t.Run("should debit within the limit", func(t *testing.T) {
		p := newTestPartner(t, 10000)

		require.NoError(t, p.Reserve(kernel.MoneyFromInt(3000)))

		assert.Equal(t, "3000.00", p.CreditUsed().String())
		assert.Equal(t, "7000.00", p.AvailableCredit().String())
	})

	t.Run("should allow reserving exactly the available credit", func(t *testing.T) {
		p := newTestPartner(t, 10000)

		require.NoError(t, p.Reserve(kernel.MoneyFromInt(10000)))
		assert.True(t, p.AvailableCredit().IsZero())
	})

	t.Run("should fail with insufficient credit and carry both amounts", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		require.NoError(t, p.Reserve(kernel.MoneyFromInt(3000)))

		err := p.Reserve(kernel.MoneyFromInt(8000))

		require.ErrorIs(t, err, partner.ErrInsufficientCredit)
		var creditErr *partner.InsufficientCreditError
		require.ErrorAs(t, err, &creditErr)
		assert.Equal(t, "7000.00", creditErr.Available.String())
		assert.Equal(t, "8000.00", creditErr.Requested.String())
		assert.Equal(t, "3000.00", p.CreditUsed().String())
	})

	t.Run("should reject non-positive amounts before anything else", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		p.Deactivate()

		for _, amount := range []kernel.Money{kernel.ZeroMoney(), kernel.MoneyFromInt(-5)} {
			err := p.Reserve(amount)
			require.ErrorIs(t, err, partner.ErrInvalidAmount)
		}
		assert.True(t, p.CreditUsed().IsZero())
	})

	t.Run("should refuse an inactive partner without touching the balance", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		p.Deactivate()

		err := p.Reserve(kernel.MoneyFromInt(1))

		require.ErrorIs(t, err, partner.ErrPartnerInactive)
		var inactiveErr *partner.InactiveError
		require.ErrorAs(t, err, &inactiveErr)
		assert.True(t, inactiveErr.PartnerID.IsEqual(p.ID()))
		assert.True(t, p.CreditUsed().IsZero())
	})
}

func TestPartner_Release(t *testing.T) {
	t.Run("should credit back", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		require.NoError(t, p.Reserve(kernel.MoneyFromInt(3000)))

		require.NoError(t, p.Release(kernel.MoneyFromInt(1000)))

		assert.Equal(t, "2000.00", p.CreditUsed().String())
	})

	t.Run("should clamp at zero when releasing more than was reserved", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		require.NoError(t, p.Reserve(kernel.MoneyFromInt(3000)))

		require.NoError(t, p.Release(kernel.MoneyFromInt(3000)))
		require.NoError(t, p.Release(kernel.MoneyFromInt(3000)))

		assert.True(t, p.CreditUsed().IsZero())
		assert.False(t, p.CreditUsed().IsNegative())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		p := newTestPartner(t, 10000)

		require.ErrorIs(t, p.Release(kernel.ZeroMoney()), partner.ErrInvalidAmount)
	})

	t.Run("should still release for an inactive partner", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		require.NoError(t, p.Reserve(kernel.MoneyFromInt(500)))
		p.Deactivate()

		require.NoError(t, p.Release(kernel.MoneyFromInt(500)))
		assert.True(t, p.CreditUsed().IsZero())
	})
}

func TestPartner_ChangeCreditLimit(t *testing.T) {
	t.Run("should raise the limit", func(t *testing.T) {
		p := newTestPartner(t, 10000)

		require.NoError(t, p.ChangeCreditLimit(kernel.MoneyFromInt(20000)))
		assert.Equal(t, "20000.00", p.CreditLimit().String())
	})

	t.Run("should not drop below credit in use", func(t *testing.T) {
		p := newTestPartner(t, 10000)
		require.NoError(t, p.Reserve(kernel.MoneyFromInt(6000)))

		err := p.ChangeCreditLimit(kernel.MoneyFromInt(5000))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "10000.00", p.CreditLimit().String())
	})

	t.Run("should reject zero", func(t *testing.T) {
		p := newTestPartner(t, 10000)

		require.ErrorIs(t, p.ChangeCreditLimit(kernel.ZeroMoney()), errs.ErrValueIsInvalid)
	})
}

func TestPartner_ActivateDeactivate(t *testing.T) {
	p := newTestPartner(t, 100)

	p.Deactivate()
	assert.False(t, p.IsActive())

	p.Activate()
	assert.True(t, p.IsActive())
}

func TestPartner_Validate(t *testing.T) {
	var p *partner.Partner
	require.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)

	require.ErrorIs(t, (&partner.Partner{}).Validate(), partner.ErrPartnerIsNotConstructed)
}

func TestNewTaxID(t *testing.T) {
	t.Run("should strip formatting", func(t *testing.T) {
		taxID, err := partner.NewTaxID("12.345.678/0001-95")

		require.NoError(t, err)
		assert.Equal(t, "12345678000195", taxID.String())
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := partner.NewTaxID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require exactly 14 digits", func(t *testing.T) {
		for _, raw := range []string{"1234567800019", "123456780001955", "1234567800019A"} {
			_, err := partner.NewTaxID(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}
