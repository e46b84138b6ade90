// Package postgres provides the GORM-based Unit of Work that binds the partner
// and order repositories to one database transaction.
//
// Every transaction started by Begin carries a local lock_timeout, so a
// partner row lock that cannot be obtained in time fails with
// ports.ErrLockNotAcquired instead of waiting indefinitely.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, 2*time.Second)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.PartnerRepository().GetForUpdate(ctx, partnerID)
//	if err != nil {
//	    return err
//	}
//	// ... mutate p and the order, then Update / Add both
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row locks taken through GetForUpdate are released on Commit or Rollback
package postgres

import (
	"context"
	"fmt"
	"time"

	"orderhub/internal/adapters/out/postgres/orderrepo"
	"orderhub/internal/adapters/out/postgres/partnerrepo"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.PublicID
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory. A lockTimeout of zero leaves the
// server default (wait forever) in place.
func NewGormUnitOfWorkFactory(db *gorm.DB, lockTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, lockTimeout: lockTimeout}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion, for callers that need
// TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		lockTimeout:       f.lockTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	lockTimeout       time.Duration
	trackedAggregates []trackedAggregate
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if uow.lockTimeout > 0 {
		// SET does not accept bind parameters; the value is an integer we format ourselves.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackAggregate(id kernel.PublicID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the ids of the aggregates written through this unit of work.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.PublicID {
	ids := make([]kernel.PublicID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
