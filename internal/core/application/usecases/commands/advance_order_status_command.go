package commands

import (
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand requests moving an order to a new status.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.PublicID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(orderID kernel.PublicID, target order.Status) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.PublicID {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.PublicID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
