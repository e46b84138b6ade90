// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the notification sink and the
// available-credit cache.
package ports

import (
	"context"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
type PartnerRepository interface {
	// Add persists a new partner.
	// Returns errs.ObjectAlreadyExistsError when the tax id is already registered.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner without locking it. Use it on read paths only.
	Get(ctx context.Context, id kernel.PublicID) (*partner.Partner, error)

	// GetForUpdate retrieves a partner and holds its exclusive row lock until the
	// enclosing transaction ends. It is the only way to read a partner whose
	// balance is about to change.
	//
	// Returns ErrLockNotAcquired when the lock wait exceeds the configured timeout.
	GetForUpdate(ctx context.Context, id kernel.PublicID) (*partner.Partner, error)

	// ExistsByTaxID reports whether a partner with the given tax id is registered.
	ExistsByTaxID(ctx context.Context, taxID partner.TaxID) (bool, error)

	// GetAll returns one page of partners, newest first, and the total count.
	GetAll(ctx context.Context, page Page) ([]*partner.Partner, int64, error)
}
