package queries

import (
	"context"
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/guard"
)

var ErrGetPartnerQueryIsNotConstructed = errors.New(
	"GetPartnerQuery must be created via NewGetPartnerQuery constructor",
)

type GetPartnerQuery struct {
	partnerID kernel.PublicID

	guard guard.ConstructorGuard
}

func NewGetPartnerQuery(partnerID kernel.PublicID) (GetPartnerQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerQuery{}, err
	}

	return GetPartnerQuery{partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerQueryIsNotConstructed)
}

func (q GetPartnerQuery) PartnerID() kernel.PublicID {
	return q.partnerID
}

type GetPartnerQueryHandler struct {
	readers Readers
}

func NewGetPartnerQueryHandler(readers Readers) GetPartnerQueryHandler {
	return GetPartnerQueryHandler{readers: readers}
}

func (h GetPartnerQueryHandler) Handle(ctx context.Context, query GetPartnerQuery) (PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return PartnerResponse{}, err
	}

	p, err := h.readers.PartnerRepository().Get(ctx, query.PartnerID())
	if err != nil {
		return PartnerResponse{}, err
	}

	return NewPartnerResponse(p), nil
}
