package commands

import (
	"context"
	"log/slog"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves an order along the transition table.
//
// The order row is locked first, so two status changes of the same order run one
// after the other and the second sees the first's result. Only Pending -> Approved
// and Approved -> Canceled move credit; those, and only those, go through the
// ledger and take the partner lock.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	ledger     CreditLedger
	notifier   ports.StatusChangeNotifier
	logger     *slog.Logger
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory UoWFactory,
	ledger CreditLedger,
	notifier ports.StatusChangeNotifier,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle returns the order in its new status. On error nothing was changed.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
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

	orders := uow.OrderRepository()

	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	target := cmd.Target()
	if err = o.ValidateStatusChange(target); err != nil {
		return nil, err
	}

	previous := o.Status()
	effect := o.CreditEffectOf(target)

	switch effect {
	case order.ReserveCredit:
		_, err = h.ledger.Reserve(ctx, uow.PartnerRepository(), o.PartnerID(), o.Total())
	case order.ReleaseCredit:
		_, err = h.ledger.Release(ctx, uow.PartnerRepository(), o.PartnerID(), o.Total())
	case order.NoCreditEffect:
	}
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(target); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if effect != order.NoCreditEffect {
		h.ledger.Invalidate(o.PartnerID())
	}
	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"partner_id", o.PartnerID().String(),
		"from", previous.String(),
		"to", target.String(),
		"credit_effect", effect.String(),
	)
	h.notifier.NotifyStatusChange(ctx, o, previous, target)

	return o, nil
}
