package notifier

import (
	"context"

	"orderhub/internal/core/domain/model/order"
)

// TransitionRecorder counts committed transitions.
type TransitionRecorder interface {
	StatusTransition(from, to string)
}

type MetricsNotifier struct {
	recorder TransitionRecorder
}

func NewMetricsNotifier(recorder TransitionRecorder) *MetricsNotifier {
	return &MetricsNotifier{recorder: recorder}
}

func (n *MetricsNotifier) NotifyStatusChange(_ context.Context, _ *order.Order, previous, current order.Status) {
	n.recorder.StatusTransition(previous.String(), current.String())
}
