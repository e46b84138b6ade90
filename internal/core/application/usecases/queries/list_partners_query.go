package queries

import (
	"context"
	"errors"

	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/guard"
)

var ErrListPartnersQueryIsNotConstructed = errors.New(
	"ListPartnersQuery must be created via NewListPartnersQuery constructor",
)

type ListPartnersQuery struct {
	page ports.Page

	guard guard.ConstructorGuard
}

func NewListPartnersQuery(page ports.Page) ListPartnersQuery {
	return ListPartnersQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q ListPartnersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnersQueryIsNotConstructed)
}

type ListPartnersQueryHandler struct {
	readers Readers
}

func NewListPartnersQueryHandler(readers Readers) ListPartnersQueryHandler {
	return ListPartnersQueryHandler{readers: readers}
}

func (h ListPartnersQueryHandler) Handle(ctx context.Context, query ListPartnersQuery) (PageResponse[PartnerResponse], error) {
	if err := query.Validate(); err != nil {
		return PageResponse[PartnerResponse]{}, err
	}

	partners, total, err := h.readers.PartnerRepository().GetAll(ctx, query.page)
	if err != nil {
		return PageResponse[PartnerResponse]{}, err
	}

	content := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		content = append(content, NewPartnerResponse(p))
	}

	return newPageResponse(content, query.page, total), nil
}
