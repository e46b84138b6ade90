package queries

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/guard"
)

var ErrGetCreditDiscrepanciesQueryIsNotConstructed = errors.New(
	"GetCreditDiscrepanciesQuery must be created via NewGetCreditDiscrepanciesQuery constructor",
)

// GetCreditDiscrepanciesQuery finds partners whose creditUsed differs from the
// sum of totals of their orders that hold credit.
type GetCreditDiscrepanciesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCreditDiscrepanciesQuery() GetCreditDiscrepanciesQuery {
	return GetCreditDiscrepanciesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCreditDiscrepanciesQuery) Validate() error {
	return q.guard.Validate(ErrGetCreditDiscrepanciesQueryIsNotConstructed)
}

// CreditDiscrepancy is one partner whose ledger and orders disagree.
// Difference is CreditUsed - Expected.
type CreditDiscrepancy struct {
	PartnerID  kernel.PublicID
	CreditUsed kernel.Money
	Expected   kernel.Money
	Difference kernel.Money
}
