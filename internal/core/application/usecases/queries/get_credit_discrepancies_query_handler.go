package queries

import (
	"context"
	"strings"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const expectedCreditExpr = "COALESCE(SUM(o.total_amount), 0)"

// GetCreditDiscrepanciesQueryHandler compares every partner's credit_used with
// the orders that should account for it, in one read-only statement.
//
// Example:
//
//	handler := NewGetCreditDiscrepanciesQueryHandler(db)
//	found, err := handler.Handle(ctx, NewGetCreditDiscrepanciesQuery())
//	for _, d := range found {
//	    log.Printf("partner %s: used %s, orders hold %s", d.PartnerID, d.CreditUsed, d.Expected)
//	}
type GetCreditDiscrepanciesQueryHandler struct {
	db *gorm.DB
}

func NewGetCreditDiscrepanciesQueryHandler(db *gorm.DB) GetCreditDiscrepanciesQueryHandler {
	return GetCreditDiscrepanciesQueryHandler{db: db}
}

func (h GetCreditDiscrepanciesQueryHandler) Handle(
	ctx context.Context,
	query GetCreditDiscrepanciesQuery,
) ([]CreditDiscrepancy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlStr, args, err := discrepanciesSQL()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make([]CreditDiscrepancy, 0)
	for rows.Next() {
		var (
			id             string
			used, expected decimal.Decimal
		)
		if err = rows.Scan(&id, &used, &expected); err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.PublicIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}

		found = append(found, CreditDiscrepancy{
			PartnerID:  partnerID,
			CreditUsed: kernel.NewMoney(used),
			Expected:   kernel.NewMoney(expected),
			Difference: kernel.NewMoney(used.Sub(expected)),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return found, nil
}

// discrepanciesSQL groups each partner with its credit-holding orders and keeps
// the groups whose sum differs from credit_used. Placeholders are '?', which
// gorm rebinds for the postgres driver.
func discrepanciesSQL() (string, []any, error) {
	holding := order.CreditHoldingStatuses()
	placeholders := make([]string, 0, len(holding))
	args := make([]any, 0, len(holding))
	for _, s := range holding {
		placeholders = append(placeholders, "?")
		args = append(args, s.String())
	}

	return sq.Select("p.public_id", "p.credit_used", expectedCreditExpr+" AS expected").
		From("partners p").
		LeftJoin(
			"orders o ON o.partner_public_id = p.public_id AND o.status IN ("+strings.Join(placeholders, ", ")+")",
			args...,
		).
		GroupBy("p.public_id", "p.credit_used").
		Having("p.credit_used <> " + expectedCreditExpr).
		OrderBy("p.public_id").
		ToSql()
}
