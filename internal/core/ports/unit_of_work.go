package ports

import (
	"context"
	"errors"
)

// ErrLockNotAcquired is returned when a partner or order row lock could not be
// obtained within the configured lock timeout. The operation had no effect and
// may be retried.
var ErrLockNotAcquired = errors.New("locked by a concurrent operation, retry")

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PartnerRepository returns a PartnerRepository bound to the current transaction,
	// or to the plain connection when no transaction was begun.
	PartnerRepository() PartnerRepository

	// OrderRepository returns an OrderRepository bound to the current transaction,
	// or to the plain connection when no transaction was begun.
	OrderRepository() OrderRepository
}
