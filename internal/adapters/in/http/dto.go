package http

import (
	"time"

	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Amounts are accepted as JSON numbers or strings and always rendered as
// strings with two decimal places.

type NewPartner struct {
	Name        string          `json:"name"`
	TaxID       string          `json:"taxId"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

type CreditLimitChange struct {
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

type NewItem struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type NewOrder struct {
	PartnerID string    `json:"partnerId"`
	Items     []NewItem `json:"items"`
	Notes     string    `json:"notes"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Partner struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TaxID           string    `json:"taxId"`
	CreditLimit     string    `json:"creditLimit"`
	CreditUsed      string    `json:"creditUsed"`
	AvailableCredit string    `json:"availableCredit"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type PartnerCredit struct {
	PartnerID       string  `json:"partnerId"`
	AvailableCredit string  `json:"availableCredit"`
	Requested       *string `json:"requested,omitempty"`
	Sufficient      *bool   `json:"sufficient,omitempty"`
}

type Item struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

type Order struct {
	ID          string    `json:"id"`
	PartnerID   string    `json:"partnerId"`
	Items       []Item    `json:"items"`
	TotalAmount string    `json:"totalAmount"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Page[T any] struct {
	Content    []T   `json:"content"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"totalElements"`
	TotalPages int   `json:"totalPages"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toPartner(r queries.PartnerResponse) Partner {
	return Partner{
		ID:              r.ID.String(),
		Name:            r.Name,
		TaxID:           r.TaxID,
		CreditLimit:     r.CreditLimit.String(),
		CreditUsed:      r.CreditUsed.String(),
		AvailableCredit: r.AvailableCredit.String(),
		Active:          r.Active,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toPartnerCredit(r queries.PartnerCreditResponse) PartnerCredit {
	out := PartnerCredit{
		PartnerID:       r.PartnerID.String(),
		AvailableCredit: r.AvailableCredit.String(),
		Sufficient:      r.Sufficient,
	}
	if r.Requested != nil {
		s := r.Requested.String()
		out.Requested = &s
	}
	return out
}

func toOrder(r queries.OrderResponse) Order {
	items := make([]Item, 0, len(r.Items))
	for _, i := range r.Items {
		items = append(items, Item{
			Product:   i.Product,
			Quantity:  i.Quantity,
			UnitPrice: i.UnitPrice.String(),
			Subtotal:  i.Subtotal.String(),
		})
	}

	return Order{
		ID:          r.ID.String(),
		PartnerID:   r.PartnerID.String(),
		Items:       items,
		TotalAmount: r.TotalAmount.String(),
		Status:      r.Status.String(),
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toPage[In, Out any](p queries.PageResponse[In], conv func(In) Out) Page[Out] {
	content := make([]Out, 0, len(p.Content))
	for _, c := range p.Content {
		content = append(content, conv(c))
	}

	return Page[Out]{
		Content:    content,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func money(d decimal.Decimal) kernel.Money {
	return kernel.NewMoney(d)
}
