package queries

import (
	"context"
	"errors"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrGetPartnerCreditQueryIsNotConstructed = errors.New(
	"GetPartnerCreditQuery must be created via NewGetPartnerCreditQuery constructor",
)

// GetPartnerCreditQuery asks for a partner's available credit and, when an
// amount is given, whether that amount could be reserved now.
type GetPartnerCreditQuery struct {
	partnerID kernel.PublicID
	amount    *kernel.Money

	guard guard.ConstructorGuard
}

func NewGetPartnerCreditQuery(partnerID kernel.PublicID, amount *kernel.Money) (GetPartnerCreditQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerCreditQuery{}, err
	}
	if amount != nil && !amount.IsPositive() {
		return GetPartnerCreditQuery{}, errs.NewValueIsInvalidError("amount")
	}

	return GetPartnerCreditQuery{
		partnerID: partnerID,
		amount:    amount,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPartnerCreditQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerCreditQueryIsNotConstructed)
}

type PartnerCreditResponse struct {
	PartnerID       kernel.PublicID
	AvailableCredit kernel.Money

	// Requested and Sufficient are set only when the query carried an amount.
	Requested  *kernel.Money
	Sufficient *bool
}

// AvailableCreditReader is the ledger's cached read of creditLimit - creditUsed.
type AvailableCreditReader interface {
	AvailableCredit(ctx context.Context, partners ports.PartnerRepository, partnerID kernel.PublicID) (kernel.Money, error)
}

// GetPartnerCreditQueryHandler answers from the ledger's available-credit cache.
// The answer is advisory: only a reservation under the partner lock is authoritative.
type GetPartnerCreditQueryHandler struct {
	readers Readers
	ledger  AvailableCreditReader
}

func NewGetPartnerCreditQueryHandler(readers Readers, ledger AvailableCreditReader) GetPartnerCreditQueryHandler {
	return GetPartnerCreditQueryHandler{readers: readers, ledger: ledger}
}

func (h GetPartnerCreditQueryHandler) Handle(ctx context.Context, query GetPartnerCreditQuery) (PartnerCreditResponse, error) {
	if err := query.Validate(); err != nil {
		return PartnerCreditResponse{}, err
	}

	available, err := h.ledger.AvailableCredit(ctx, h.readers.PartnerRepository(), query.partnerID)
	if err != nil {
		return PartnerCreditResponse{}, err
	}

	resp := PartnerCreditResponse{
		PartnerID:       query.partnerID,
		AvailableCredit: available,
	}
	if query.amount != nil {
		requested := *query.amount
		sufficient := !requested.GreaterThan(available)
		resp.Requested = &requested
		resp.Sufficient = &sufficient
	}

	return resp, nil
}
