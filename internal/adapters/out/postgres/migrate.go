package postgres

import (
	"orderhub/internal/adapters/out/postgres/orderrepo"
	"orderhub/internal/adapters/out/postgres/partnerrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the partners, orders and order_items tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&partnerrepo.PartnerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
}
