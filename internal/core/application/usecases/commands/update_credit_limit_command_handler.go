package commands

import (
	"context"
	"log/slog"

	"orderhub/internal/core/domain/model/partner"
)

// UpdateCreditLimitCommandHandler changes a partner's credit limit under the
// partner lock, so the new limit is checked against a creditUsed no reservation
// can change concurrently.
type UpdateCreditLimitCommandHandler struct {
	uowFactory PartnerUoWFactory
	cache      CreditCacheInvalidator
	logger     *slog.Logger
}

func NewUpdateCreditLimitCommandHandler(
	uowFactory PartnerUoWFactory,
	cache CreditCacheInvalidator,
	logger *slog.Logger,
) UpdateCreditLimitCommandHandler {
	return UpdateCreditLimitCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

func (h UpdateCreditLimitCommandHandler) Handle(ctx context.Context, cmd UpdateCreditLimitCommand) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partners := uow.PartnerRepository()

	p, err := partners.GetForUpdate(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	previous := p.CreditLimit()
	if err = p.ChangeCreditLimit(cmd.CreditLimit()); err != nil {
		return nil, err
	}

	if err = partners.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(p.ID())
	h.logger.InfoContext(ctx, "credit limit changed",
		"partner_id", p.ID().String(),
		"from", previous.String(),
		"to", p.CreditLimit().String(),
	)
	return p, nil
}
