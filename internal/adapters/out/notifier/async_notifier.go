package notifier

import (
	"context"
	"sync"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
)

// AsyncNotifier runs the wrapped sink on its own goroutine so the caller
// returns as soon as the transition is committed. Each delivery gets a context
// detached from the caller's cancellation and bounded by timeout.
type AsyncNotifier struct {
	next    ports.StatusChangeNotifier
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsyncNotifier(next ports.StatusChangeNotifier, timeout time.Duration) *AsyncNotifier {
	return &AsyncNotifier{next: next, timeout: timeout}
}

func (a *AsyncNotifier) NotifyStatusChange(ctx context.Context, o *order.Order, previous, current order.Status) {
	detached := context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(detached, a.timeout)
		defer cancel()
		a.next.NotifyStatusChange(ctx, o, previous, current)
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (a *AsyncNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
