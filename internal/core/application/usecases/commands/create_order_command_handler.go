package commands

import (
	"context"
	"log/slog"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
)

// CreateOrderCommandHandler places an order and reserves its total in one transaction.
//
// The order is created Pending, its credit is reserved under the partner lock and
// it is moved to Approved before anything is written. If the reservation fails
// nothing is persisted: there is never a Pending order left behind by a failed create.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, creditLedger, ids, notifier, logger)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, partner.ErrInsufficientCredit):
//	    // nothing was written
//	case err != nil:
//	    return err
//	}
//	fmt.Println(o.ID(), o.Status()) // ORD_..., APPROVED
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	ledger     CreditLedger
	ids        kernel.PublicIDGenerator
	notifier   ports.StatusChangeNotifier
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	ledger CreditLedger,
	ids kernel.PublicIDGenerator,
	notifier ports.StatusChangeNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		ids:        ids,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle returns the committed order in Approved status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	p, err := partners.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, partner.NewInactiveError(p.ID())
	}

	o, err := order.NewOrder(h.ids.NewPublicID(kernel.OrderIDPrefix), p.ID(), cmd.Items(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateStatusChange(order.Approved); err != nil {
		return nil, err
	}

	if _, err = h.ledger.Reserve(ctx, partners, p.ID(), o.Total()); err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(order.Approved); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.ledger.Invalidate(p.ID())
	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"partner_id", p.ID().String(),
		"total_amount", o.Total().String(),
		"items", len(o.Items()),
	)
	h.notifier.NotifyStatusChange(ctx, o, order.Pending, order.Approved)

	return o, nil
}
