// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// The order commands are the only callers of the ledger's Reserve and Release.
package commands

import (
	"context"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PartnerRepoFactory provides access to partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW manages transactions across both order and partner aggregates.
	// Used by every order command: an order and the credit it holds change together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   _, err = creditLedger.Release(ctx, uow.PartnerRepository(), o.PartnerID(), o.Total())
	//   // ... change status, update the order
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PartnerRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// CreditLedger moves partner credit. Reserve and Release lock the partner through
// the given repository, which must be bound to the caller's transaction.
type CreditLedger interface {
	Reserve(ctx context.Context, partners ports.PartnerRepository, partnerID kernel.PublicID, amount kernel.Money) (*partner.Partner, error)
	Release(ctx context.Context, partners ports.PartnerRepository, partnerID kernel.PublicID, amount kernel.Money) (*partner.Partner, error)
	CreditCacheInvalidator
}

// CreditCacheInvalidator drops a partner's cached available credit.
type CreditCacheInvalidator interface {
	Invalidate(partnerID kernel.PublicID)
}
