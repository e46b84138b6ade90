package queries

import (
	"errors"
	"time"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter selects which orders ListOrdersQuery returns.
type OrderFilter int

const (
	FilterNone OrderFilter = iota
	FilterStatus
	FilterDateRange
)

// ListOrdersQuery lists orders newest first. Filters are mutually exclusive:
// a complete date range wins over a status, and a status wins over no filter.
//
// Example:
//
//	from, to := time.Now().AddDate(0, -1, 0), time.Now()
//	q, err := NewListOrdersQuery(&from, &to, nil, ports.NewPage(0, 20))
type ListOrdersQuery struct {
	filter OrderFilter
	from   time.Time
	to     time.Time
	status order.Status
	page   ports.Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery picks the filter. A date range needs both ends; with only
// one end set it is ignored.
func NewListOrdersQuery(from, to *time.Time, status *order.Status, page ports.Page) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	switch {
	case from != nil && to != nil:
		if to.Before(*from) {
			return ListOrdersQuery{}, errs.NewValueIsInvalidError("date range: end is before start")
		}
		q.filter = FilterDateRange
		q.from, q.to = *from, *to
	case status != nil:
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.filter = FilterStatus
		q.status = *status
	default:
		q.filter = FilterNone
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

func (q ListOrdersQuery) Page() ports.Page {
	return q.page
}
