package commands

import (
	"context"
	"log/slog"

	"orderhub/internal/core/domain/model/partner"
)

// SetPartnerActiveCommandHandler flips a partner's active flag. The partner row is
// locked because Update writes the whole balance back.
type SetPartnerActiveCommandHandler struct {
	uowFactory PartnerUoWFactory
	logger     *slog.Logger
}

func NewSetPartnerActiveCommandHandler(uowFactory PartnerUoWFactory, logger *slog.Logger) SetPartnerActiveCommandHandler {
	return SetPartnerActiveCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (h SetPartnerActiveCommandHandler) Handle(ctx context.Context, cmd SetPartnerActiveCommand) (*partner.Partner, error) {
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

	if cmd.Active() {
		p.Activate()
	} else {
		p.Deactivate()
	}

	if err = partners.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "partner activation changed",
		"partner_id", p.ID().String(),
		"active", p.IsActive(),
	)
	return p, nil
}
