package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/guard"
)

var ErrSetPartnerActiveCommandIsNotConstructed = errors.New(
	"SetPartnerActiveCommand must be created via NewSetPartnerActiveCommand constructor",
)

// SetPartnerActiveCommand activates or deactivates a partner.
type SetPartnerActiveCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.PublicID
	active    bool

	guard guard.ConstructorGuard
}

func NewSetPartnerActiveCommand(partnerID kernel.PublicID, active bool) (SetPartnerActiveCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return SetPartnerActiveCommand{}, err
	}

	return SetPartnerActiveCommand{
		partnerID: partnerID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetPartnerActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerActiveCommandIsNotConstructed)
}

func (c SetPartnerActiveCommand) PartnerID() kernel.PublicID {
	return c.partnerID
}

func (c SetPartnerActiveCommand) Active() bool {
	return c.active
}
