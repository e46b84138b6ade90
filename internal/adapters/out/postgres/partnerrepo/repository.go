package partnerrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderhub/internal/adapters/out/postgres/pgerr"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.PublicID, aggregate any)
}

func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new partner. A duplicate tax id is reported as errs.ObjectAlreadyExistsError.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			if strings.Contains(pgerr.Constraint(err), "tax_id") {
				return errs.NewObjectAlreadyExistsErrorWithCause("tax id", dto.TaxID, err)
			}
			return errs.NewObjectAlreadyExistsErrorWithCause("partner", dto.PublicID, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns of an existing partner.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("public_id = ?", dto.PublicID).
		Select("name", "credit_limit", "credit_used", "active", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", dto.PublicID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.PublicID) (*partner.Partner, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the partner with SELECT ... FOR UPDATE. It must run inside a
// transaction; the lock is held until that transaction ends.
func (r *GormPartnerRepository) GetForUpdate(ctx context.Context, id kernel.PublicID) (*partner.Partner, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPartnerRepository) ExistsByTaxID(ctx context.Context, taxID partner.TaxID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("tax_id = ?", taxID.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormPartnerRepository) GetAll(ctx context.Context, page ports.Page) ([]*partner.Partner, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&PartnerDTO{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("public_id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		partners = append(partners, p)
	}

	return partners, total, nil
}

func (r *GormPartnerRepository) get(query *gorm.DB, id kernel.PublicID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := query.Take(&dto, "public_id = ?", id.String()).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		case pgerr.IsLockNotAvailable(err):
			return nil, fmt.Errorf("partner %s: %w", id, ports.ErrLockNotAcquired)
		}
		return nil, err
	}

	return toDomain(dto)
}
