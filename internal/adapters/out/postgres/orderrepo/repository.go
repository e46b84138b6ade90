package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderhub/internal/adapters/out/postgres/pgerr"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.PublicID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the status, notes, total and timestamp of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("public_id = ?", dto.PublicID).
		Select("status", "notes", "total_amount", "updated_at").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.PublicID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items in their original order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.PublicID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the order row with SELECT ... FOR UPDATE. Concurrent status
// changes of the same order are serialized on this lock; the loser sees the
// winner's committed status.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.PublicID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(query *gorm.DB, id kernel.PublicID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := query.
		Preload("Items", orderedItems).
		Take(&dto, "public_id = ?", id.String()).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, errs.NewObjectNotFoundError("order", id.String())
		case pgerr.IsLockNotAvailable(err):
			return nil, fmt.Errorf("order %s: %w", id, ports.ErrLockNotAcquired)
		default:
			return nil, err
		}
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAllByStatus(
	ctx context.Context,
	status order.Status,
	page ports.Page,
) ([]*order.Order, int64, error) {
	if err := status.Validate(); err != nil {
		return nil, 0, err
	}

	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status.String())
	})
}

func (r *GormOrderRepository) GetAllCreatedBetween(
	ctx context.Context,
	from, to time.Time,
	page ports.Page,
) ([]*order.Order, int64, error) {
	if to.Before(from) {
		return nil, 0, errs.NewValueIsInvalidError("date range: to is before from")
	}

	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at BETWEEN ? AND ?", from, to)
	})
}

func (r *GormOrderRepository) GetAll(ctx context.Context, page ports.Page) ([]*order.Order, int64, error) {
	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB { return db })
}

// list counts the rows matched by filter and loads one page of them, newest first.
func (r *GormOrderRepository) list(
	ctx context.Context,
	page ports.Page,
	filter func(*gorm.DB) *gorm.DB,
) ([]*order.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Scopes(filter).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Order("public_id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
