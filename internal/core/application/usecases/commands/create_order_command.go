package commands

import (
	"errors"
	"fmt"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemLine is one requested line of a new order.
type ItemLine struct {
	Product   string
	Quantity  int
	UnitPrice kernel.Money
}

// CreateOrderCommand represents a request to place an order against a partner's credit line.
//
// An empty item list is accepted here; the order is then rejected with
// order.ErrEmptyOrder when it tries to enter Approved.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(partnerID, []ItemLine{
//	    {Product: "Steel beam", Quantity: 2, UnitPrice: kernel.MustMoneyFromString("1500.00")},
//	}, "deliver to dock 3")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.PublicID
	items     []order.Item
	notes     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the partner id and builds the item value objects.
func NewCreateOrderCommand(partnerID kernel.PublicID, lines []ItemLine, notes string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setItems(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) PartnerID() kernel.PublicID {
	return c.partnerID
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setPartnerID(partnerID kernel.PublicID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreateOrderCommand) setItems(lines []ItemLine) error {
	items := make([]order.Item, 0, len(lines))
	var errList []error
	for i, line := range lines {
		item, err := order.NewItem(line.Product, line.Quantity, line.UnitPrice)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.items = items
	return nil
}
