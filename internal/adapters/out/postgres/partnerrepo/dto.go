// Package partnerrepo persists partner aggregates with GORM.
package partnerrepo

import (
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"

	"github.com/shopspring/decimal"
)

// PartnerDTO is the partners table. The check constraint backs the ledger
// invariant 0 <= credit_used <= credit_limit at the storage level.
type PartnerDTO struct {
	PublicID    string          `gorm:"column:public_id;type:varchar(20);primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	TaxID       string          `gorm:"column:tax_id;type:varchar(14);not null;uniqueIndex:idx_partners_tax_id"`
	CreditLimit decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CreditUsed  decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0;check:chk_partners_credit_used,credit_used >= 0 AND credit_used <= credit_limit"` //nolint:lll
	Active      bool            `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_partners_created_at"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(p *partner.Partner) PartnerDTO {
	return PartnerDTO{
		PublicID:    p.ID().String(),
		Name:        p.Name(),
		TaxID:       p.TaxID().String(),
		CreditLimit: p.CreditLimit().Decimal(),
		CreditUsed:  p.CreditUsed().Decimal(),
		Active:      p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.PublicIDFromString(dto.PublicID)
	if err != nil {
		return nil, err
	}

	taxID, err := partner.NewTaxID(dto.TaxID)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		taxID,
		kernel.NewMoney(dto.CreditLimit),
		kernel.NewMoney(dto.CreditUsed),
		dto.Active,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
