package order

import (
	"errors"
	"fmt"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

const (
	maxProductLength = 100

	// maxUnitPriceScale matches the precision unit prices are persisted with.
	maxUnitPriceScale int32 = 4
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is an order line. It is a value object: immutable, compared by value and
// owned by exactly one order without referring back to it.
type Item struct {
	product   string
	quantity  int
	unitPrice kernel.Money

	// subtotal is unitPrice × quantity rounded half-up to two places
	subtotal kernel.Money

	isConstructed bool
}

// NewItem validates a line and computes its subtotal.
//
// Example:
//
//	item, err := order.NewItem("Pallet of screws", 3, kernel.MustMoneyFromString("1000.00"))
//	item.Subtotal() // 3000.00
func NewItem(product string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProduct(product),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.subtotal = item.unitPrice.Mul(int64(item.quantity)).Round()
	return item, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) Product() string {
	return i.product
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}

func (i Item) IsEqual(other Item) bool {
	return i.product == other.product &&
		i.quantity == other.quantity &&
		i.unitPrice.Equal(other.unitPrice)
}

func (i *Item) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	if n := len([]rune(product)); n > maxProductLength {
		return errs.NewValueIsOutOfRangeError("product length", n, 1, maxProductLength)
	}

	i.product = product
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}

	if unitPrice.Scale() > maxUnitPriceScale {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s has more than %d decimal places", unitPrice, maxUnitPriceScale),
		)
	}

	i.unitPrice = unitPrice
	return nil
}

// RecalculateTotal returns the sum of the item subtotals rounded half-up to two places.
// It is a pure function of its input.
func RecalculateTotal(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total.Round()
}
