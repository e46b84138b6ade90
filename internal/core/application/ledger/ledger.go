// Package ledger is the Partner Ledger: the only code path that moves a
// partner's creditUsed.
//
// Reserve and Release expect a PartnerRepository bound to an open transaction.
// They take the partner's row lock through GetForUpdate and keep it until that
// transaction ends, so every check-then-act sequence on one partner is
// linearized while other partners proceed in parallel.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"
)

const (
	OperationReserve = "reserve"
	OperationRelease = "release"
)

// Recorder observes every ledger call.
type Recorder interface {
	CreditOperation(operation, outcome string, amount float64)
}

type noopRecorder struct{}

func (noopRecorder) CreditOperation(string, string, float64) {}

type Ledger struct {
	cache    ports.AvailableCreditCache
	recorder Recorder
	logger   *slog.Logger
}

// New builds a ledger. recorder may be nil.
func New(cache ports.AvailableCreditCache, recorder Recorder, logger *slog.Logger) (*Ledger, error) {
	if cache == nil {
		return nil, errs.NewValueIsRequiredError("cache")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Ledger{
		cache:    cache,
		recorder: recorder,
		logger:   logger.With("component", "ledger"),
	}, nil
}

// Reserve locks the partner, debits amount and persists the new balance.
// On any error the partner is left as it was.
func (l *Ledger) Reserve(ctx context.Context, partners ports.PartnerRepository, partnerID kernel.PublicID, amount kernel.Money) (*partner.Partner, error) {
	return l.apply(ctx, partners, OperationReserve, partnerID, amount, (*partner.Partner).Reserve)
}

// Release locks the partner, credits amount back (clamped at zero) and persists.
func (l *Ledger) Release(ctx context.Context, partners ports.PartnerRepository, partnerID kernel.PublicID, amount kernel.Money) (*partner.Partner, error) {
	return l.apply(ctx, partners, OperationRelease, partnerID, amount, (*partner.Partner).Release)
}

func (l *Ledger) apply(
	ctx context.Context,
	partners ports.PartnerRepository,
	operation string,
	partnerID kernel.PublicID,
	amount kernel.Money,
	mutate func(*partner.Partner, kernel.Money) error,
) (*partner.Partner, error) {
	p, err := l.lockAndMutate(ctx, partners, partnerID, amount, mutate)
	l.recorder.CreditOperation(operation, outcome(err), amount.Decimal().InexactFloat64())
	if err != nil {
		return nil, err
	}

	l.cache.Invalidate(partnerID)
	l.logger.DebugContext(ctx, "credit "+operation+"d",
		"partner_id", partnerID.String(),
		"amount", amount.String(),
		"credit_used", p.CreditUsed().String(),
		"available", p.AvailableCredit().String(),
	)
	return p, nil
}

func (l *Ledger) lockAndMutate(
	ctx context.Context,
	partners ports.PartnerRepository,
	partnerID kernel.PublicID,
	amount kernel.Money,
	mutate func(*partner.Partner, kernel.Money) error,
) (*partner.Partner, error) {
	if !amount.IsPositive() {
		return nil, partner.NewInvalidAmountError(amount)
	}

	p, err := partners.GetForUpdate(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if err := mutate(p, amount); err != nil {
		return nil, err
	}

	if err := partners.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// AvailableCredit returns creditLimit - creditUsed, served from the cache when
// possible. partners is used only on a cache miss and is never locked.
func (l *Ledger) AvailableCredit(ctx context.Context, partners ports.PartnerRepository, partnerID kernel.PublicID) (kernel.Money, error) {
	return l.cache.GetOrLoad(ctx, partnerID, func(ctx context.Context) (kernel.Money, error) {
		p, err := partners.Get(ctx, partnerID)
		if err != nil {
			return kernel.Money{}, err
		}
		return p.AvailableCredit(), nil
	})
}

// Invalidate drops the cached balance of a partner. Callers run it again after
// commit so a read racing the transaction cannot leave a stale value behind.
func (l *Ledger) Invalidate(partnerID kernel.PublicID) {
	l.cache.Invalidate(partnerID)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, partner.ErrInsufficientCredit):
		return "insufficient_credit"
	case errors.Is(err, partner.ErrPartnerInactive):
		return "partner_inactive"
	case errors.Is(err, partner.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ports.ErrLockNotAcquired):
		return "lock_timeout"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	default:
		return "error"
	}
}
