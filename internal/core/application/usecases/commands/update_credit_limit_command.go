package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/guard"
)

var ErrUpdateCreditLimitCommandIsNotConstructed = errors.New(
	"UpdateCreditLimitCommand must be created via NewUpdateCreditLimitCommand constructor",
)

type UpdateCreditLimitCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.PublicID
	creditLimit kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateCreditLimitCommand checks the id only; the aggregate checks the limit
// against the credit in use.
func NewUpdateCreditLimitCommand(partnerID kernel.PublicID, creditLimit kernel.Money) (UpdateCreditLimitCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return UpdateCreditLimitCommand{}, err
	}

	return UpdateCreditLimitCommand{
		partnerID:   partnerID,
		creditLimit: creditLimit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCreditLimitCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCreditLimitCommandIsNotConstructed)
}

func (c UpdateCreditLimitCommand) PartnerID() kernel.PublicID {
	return c.partnerID
}

func (c UpdateCreditLimitCommand) CreditLimit() kernel.Money {
	return c.creditLimit
}
