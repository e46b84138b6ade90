package notifier

import (
	"context"
	"log/slog"

	"orderhub/internal/core/domain/model/order"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "status-notifier")}
}

func (n *LogNotifier) NotifyStatusChange(ctx context.Context, o *order.Order, previous, current order.Status) {
	n.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"partner_id", o.PartnerID().String(),
		"previous_status", previous.String(),
		"new_status", current.String(),
		"total_amount", o.Total().String(),
	)
}
