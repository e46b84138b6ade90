package order

import (
	"errors"
	"fmt"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

const maxNotesLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of a partner's purchase. It owns an ordered
// sequence of Item values and keeps its total equal to RecalculateTotal(items).
//
// Order follows these invariants:
//   - Must have a valid public identifier and partner reference
//   - total == RecalculateTotal(items) at all times
//   - Status changes only through ChangeStatus, which consults the transition table
//   - An order without items can never become Approved
//   - Items are fixed at construction
type Order struct {
	// id is the public identifier of the order
	id kernel.PublicID

	// partnerID references the partner whose credit the order draws on
	partnerID kernel.PublicID

	// items are the order lines in the sequence they were placed
	items []Item

	// total is derived from items
	total kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// notes is optional free text up to 500 characters
	notes string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Pending status and computes its total.
// An empty item list is accepted here; it is rejected when the order is approved.
//
// Example:
//
//	item, _ := order.NewItem("Steel beam", 2, kernel.MustMoneyFromString("1500.00"))
//	o, err := order.NewOrder(gen.NewPublicID(kernel.OrderIDPrefix), partnerID, []order.Item{item}, "")
//	o.Total() // 3000.00
func NewOrder(id kernel.PublicID, partnerID kernel.PublicID, items []Item, notes string) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPartnerID(partnerID),
		order.setItems(items),
		order.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state. The total is recomputed
// from the items rather than trusted from storage.
func RestoreOrder(
	id kernel.PublicID,
	partnerID kernel.PublicID,
	items []Item,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPartnerID(partnerID),
		order.setItems(items),
		order.setNotes(notes),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.PublicID {
	return o.id
}

func (o *Order) PartnerID() kernel.PublicID {
	return o.partnerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ValidateStatusChange checks target against the transition table and the
// approval guard without changing the order.
func (o *Order) ValidateStatusChange(target Status) error {
	if !o.status.CanTransitionTo(target) {
		return NewInvalidTransitionError(o.status, target)
	}

	if target == Approved && len(o.items) == 0 {
		return ErrEmptyOrder
	}

	return nil
}

// ChangeStatus moves the order to target. On error the order is left unchanged.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.ValidateStatusChange(target); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

// CreditEffectOf returns the ledger movement moving this order to target requires.
func (o *Order) CreditEffectOf(target Status) CreditEffect {
	return CreditEffectOf(o.status, target)
}

func (o *Order) setID(id kernel.PublicID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setPartnerID(partnerID kernel.PublicID) error {
	if err := partnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}

	o.partnerID = partnerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", idx), err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = RecalculateTotal(o.items)
	return nil
}

func (o *Order) setNotes(notes string) error {
	if n := len([]rune(notes)); n > maxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, maxNotesLength)
	}

	o.notes = notes
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}
