package commands

import (
	"context"
	"log/slog"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/pkg/errs"
)

// CreatePartnerCommandHandler registers a new active partner.
// A tax id that is already registered fails with errs.ObjectAlreadyExistsError;
// the unique index on tax_id enforces the same rule for racing requests.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	ids        kernel.PublicIDGenerator
	logger     *slog.Logger
}

func NewCreatePartnerCommandHandler(
	uowFactory PartnerUoWFactory,
	ids kernel.PublicIDGenerator,
	logger *slog.Logger,
) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		logger:     logger,
	}
}

func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) (*partner.Partner, error) {
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

	exists, err := partners.ExistsByTaxID(ctx, cmd.TaxID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("tax id", cmd.TaxID().String())
	}

	p, err := partner.NewPartner(h.ids.NewPublicID(kernel.PartnerIDPrefix), cmd.Name(), cmd.TaxID(), cmd.CreditLimit())
	if err != nil {
		return nil, err
	}

	if err = partners.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "partner created",
		"partner_id", p.ID().String(),
		"credit_limit", p.CreditLimit().String(),
	)
	return p, nil
}
