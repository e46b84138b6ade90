package ports

import (
	"context"

	"orderhub/internal/core/domain/model/order"
)

// StatusChangeNotifier is told about every committed status change.
//
// It is called after commit, once per transition. Implementations must not block
// the caller for long and must handle their own failures: nothing they do can roll
// back the transition that was reported.
type StatusChangeNotifier interface {
	NotifyStatusChange(ctx context.Context, o *order.Order, previous, current order.Status)
}
