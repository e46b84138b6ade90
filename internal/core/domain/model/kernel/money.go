package kernel

import (
	"fmt"

	"orderhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for amounts and totals.
const MoneyScale int32 = 2

// Money is an immutable monetary amount backed by an arbitrary-precision decimal.
// Arithmetic never rounds implicitly; Round applies half-up rounding to MoneyScale
// places, which is how subtotals, totals and ledger balances are normalized.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// MoneyFromInt returns a whole amount, e.g. MoneyFromInt(3000) is 3000.00.
func MoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return Money{amount: amount}, nil
}

// MustMoneyFromString is MoneyFromString for literals known to be valid.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Mul(quantity int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(quantity))}
}

// Round rounds half-up (away from zero on a tie) to MoneyScale decimal places.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(MoneyScale)}
}

// Scale reports the number of digits after the decimal point in the stored amount.
func (m Money) Scale() int32 {
	if exp := m.amount.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with at least MoneyScale decimal places.
func (m Money) String() string {
	if m.Scale() > MoneyScale {
		return m.amount.String()
	}
	return m.amount.StringFixed(MoneyScale)
}
