package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

// MultiNotifier forwards to every sink in order. A sink that panics is logged
// and skipped; the remaining sinks still run.
type MultiNotifier struct {
	sinks  []ports.StatusChangeNotifier
	logger *slog.Logger
}

func NewMultiNotifier(logger *slog.Logger, sinks ...ports.StatusChangeNotifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks, logger: logger}
}

func (m *MultiNotifier) NotifyStatusChange(ctx context.Context, o *order.Order, previous, current order.Status) {
	for _, sink := range m.sinks {
		m.notifyOne(ctx, sink, o, previous, current)
	}
}

func (m *MultiNotifier) notifyOne(
	ctx context.Context,
	sink ports.StatusChangeNotifier,
	o *order.Order,
	previous, current order.Status,
) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.ErrorContext(ctx, "notification sink panicked",
				"sink", fmt.Sprintf("%T", sink),
				"order_id", o.ID().String(),
				"panic", r,
			)
		}
	}()

	sink.NotifyStatusChange(ctx, o, previous, current)
}
