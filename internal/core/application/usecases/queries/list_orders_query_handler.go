package queries

import (
	"context"

	"orderhub/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	readers Readers
}

func NewListOrdersQueryHandler(readers Readers) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readers: readers}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (PageResponse[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[OrderResponse]{}, err
	}

	repo := h.readers.OrderRepository()

	var (
		orders []*order.Order
		total  int64
		err    error
	)
	switch query.filter {
	case FilterDateRange:
		orders, total, err = repo.GetAllCreatedBetween(ctx, query.from, query.to, query.page)
	case FilterStatus:
		orders, total, err = repo.GetAllByStatus(ctx, query.status, query.page)
	case FilterNone:
		orders, total, err = repo.GetAll(ctx, query.page)
	}
	if err != nil {
		return PageResponse[OrderResponse]{}, err
	}

	content := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		content = append(content, NewOrderResponse(o))
	}

	return newPageResponse(content, query.page, total), nil
}
