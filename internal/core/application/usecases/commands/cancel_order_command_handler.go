package commands

import (
	"context"

	"orderhub/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order. An Approved order releases its
// credit, a Pending one is canceled directly, and any other status fails with
// order.InvalidTransitionError.
type CancelOrderCommandHandler struct {
	advance AdvanceOrderStatusCommandHandler
}

func NewCancelOrderCommandHandler(advance AdvanceOrderStatusCommandHandler) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{advance: advance}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	advance, err := NewAdvanceOrderStatusCommand(cmd.OrderID(), order.Canceled)
	if err != nil {
		return nil, err
	}

	return h.advance.Handle(ctx, advance)
}
