// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases and never lock anything.
package queries

import (
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
)

// Readers gives access to repositories bound to the plain connection.
type Readers interface {
	PartnerRepository() ports.PartnerRepository
	OrderRepository() ports.OrderRepository
}

type ItemResponse struct {
	Product   string
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

type OrderResponse struct {
	ID          kernel.PublicID
	PartnerID   kernel.PublicID
	Items       []ItemResponse
	TotalAmount kernel.Money
	Status      order.Status
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrderResponse maps an order aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Product:   item.Product(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:          o.ID(),
		PartnerID:   o.PartnerID(),
		Items:       items,
		TotalAmount: o.Total(),
		Status:      o.Status(),
		Notes:       o.Notes(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

type PartnerResponse struct {
	ID              kernel.PublicID
	Name            string
	TaxID           string
	CreditLimit     kernel.Money
	CreditUsed      kernel.Money
	AvailableCredit kernel.Money
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPartnerResponse maps a partner aggregate to its read model.
func NewPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:              p.ID(),
		Name:            p.Name(),
		TaxID:           p.TaxID().String(),
		CreditLimit:     p.CreditLimit(),
		CreditUsed:      p.CreditUsed(),
		AvailableCredit: p.AvailableCredit(),
		Active:          p.IsActive(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// PageResponse wraps one page of a listing.
type PageResponse[T any] struct {
	Content    []T
	Page       int
	Size       int
	Total      int64
	TotalPages int
}

func newPageResponse[T any](content []T, page ports.Page, total int64) PageResponse[T] {
	return PageResponse[T]{
		Content:    content,
		Page:       page.Number,
		Size:       page.Limit(),
		Total:      total,
		TotalPages: page.TotalPages(total),
	}
}
