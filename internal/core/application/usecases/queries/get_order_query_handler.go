package queries

import (
	"context"
)

// GetOrderQueryHandler loads one order with its items.
type GetOrderQueryHandler struct {
	readers Readers
}

func NewGetOrderQueryHandler(readers Readers) GetOrderQueryHandler {
	return GetOrderQueryHandler{readers: readers}
}

// Handle returns errs.ObjectNotFoundError for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.readers.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
