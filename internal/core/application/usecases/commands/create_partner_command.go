package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand registers a partner with a credit line.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	name        string
	taxID       partner.TaxID
	creditLimit kernel.Money

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand parses the tax id and checks the limit is positive.
// The name is checked by the aggregate.
func NewCreatePartnerCommand(name, taxID string, creditLimit kernel.Money) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaxID(taxID),
		cmd.setCreditLimit(creditLimit),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return cmd, nil
}

func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

func (c CreatePartnerCommand) Name() string {
	return c.name
}

func (c CreatePartnerCommand) TaxID() partner.TaxID {
	return c.taxID
}

func (c CreatePartnerCommand) CreditLimit() kernel.Money {
	return c.creditLimit
}

func (c *CreatePartnerCommand) setTaxID(raw string) error {
	taxID, err := partner.NewTaxID(raw)
	if err != nil {
		return err
	}

	c.taxID = taxID
	return nil
}

func (c *CreatePartnerCommand) setCreditLimit(limit kernel.Money) error {
	if !limit.IsPositive() {
		return errs.NewValueIsInvalidError("credit limit")
	}

	c.creditLimit = limit
	return nil
}
