package ports

import (
	"context"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded whole, items included, in their original sequence.
// Every listing is ordered by creation time, newest first.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an existing order (status, notes, timestamps).
	// Items are fixed at creation and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.PublicID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds its row lock until the enclosing
	// transaction ends. Status changes read the order through it.
	//
	// Returns ErrLockNotAcquired when the lock wait exceeds the configured timeout.
	GetForUpdate(ctx context.Context, id kernel.PublicID) (*order.Order, error)

	// GetAllByStatus returns one page of orders in the given status and the total count.
	GetAllByStatus(ctx context.Context, status order.Status, page Page) ([]*order.Order, int64, error)

	// GetAllCreatedBetween returns one page of orders created in [from, to] and the total count.
	GetAllCreatedBetween(ctx context.Context, from, to time.Time, page Page) ([]*order.Order, int64, error)

	// GetAll returns one page of all orders and the total count.
	GetAll(ctx context.Context, page Page) ([]*order.Order, int64, error)
}
