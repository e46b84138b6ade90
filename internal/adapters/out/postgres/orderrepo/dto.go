// Package orderrepo persists order aggregates and their items with GORM.
package orderrepo

import (
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. Status is stored by name so the column stays
// readable and independent of the enum's numeric values.
type OrderDTO struct {
	PublicID        string          `gorm:"column:public_id;type:varchar(20);primaryKey"`
	PartnerPublicID string          `gorm:"column:partner_public_id;type:varchar(20);not null;index:idx_orders_partner"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index:idx_orders_status"`
	Notes           string          `gorm:"type:varchar(500)"`
	CreatedAt       time.Time       `gorm:"not null;index:idx_orders_created_at"`
	UpdatedAt       time.Time       `gorm:"not null"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderPublicID;references:PublicID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one row of order_items. Position is 1-based and keeps the original line order.
type ItemDTO struct {
	OrderPublicID string          `gorm:"column:order_public_id;type:varchar(20);primaryKey"`
	Position      int             `gorm:"primaryKey;autoIncrement:false"`
	Product       string          `gorm:"type:varchar(100);not null"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(15,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtoItems := make([]ItemDTO, 0, len(items))
	for idx, item := range items {
		dtoItems = append(dtoItems, ItemDTO{
			OrderPublicID: o.ID().String(),
			Position:      idx + 1,
			Product:       item.Product(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().Decimal(),
			Subtotal:      item.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		PublicID:        o.ID().String(),
		PartnerPublicID: o.PartnerID().String(),
		TotalAmount:     o.Total().Decimal(),
		Status:          o.Status().String(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Items:           dtoItems,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Items are expected in
// position order; the total is recomputed from them.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.PublicIDFromString(dto.PublicID)
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.PublicIDFromString(dto.PartnerPublicID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Product, itemDTO.Quantity, kernel.NewMoney(itemDTO.UnitPrice))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		partnerID,
		items,
		status,
		dto.Notes,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
