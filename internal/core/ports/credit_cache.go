package ports

import (
	"context"

	"orderhub/internal/core/domain/model/kernel"
)

// AvailableCreditCache memoizes a partner's available credit between ledger mutations.
type AvailableCreditCache interface {
	// GetOrLoad returns the cached value for id or calls load and caches its result.
	// A value loaded concurrently with an Invalidate for the same id is returned
	// but not cached.
	GetOrLoad(ctx context.Context, id kernel.PublicID, load func(ctx context.Context) (kernel.Money, error)) (kernel.Money, error)

	// Invalidate drops the cached value for id.
	Invalidate(id kernel.PublicID)
}
