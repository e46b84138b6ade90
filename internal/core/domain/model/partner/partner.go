package partner

import (
	"errors"
	"fmt"
	"time"

	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"
)

const maxNameLength = 100

var (
	// ErrPartnerIsNotConstructed is returned when a Partner was not created through
	// NewPartner or RestorePartner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner or RestorePartner constructor")
)

// Partner is the aggregate root of a B2B counterparty and its revolving credit line.
//
// Partner follows these invariants:
//   - 0 <= creditUsed <= creditLimit at every observable point
//   - creditLimit is positive
//   - creditUsed changes only through Reserve and Release
//   - a partner is never deleted, only deactivated
//
// Reserve and Release are not safe for concurrent use on the same instance; the
// caller serializes them by holding the partner's row lock for the whole
// read-check-write sequence.
type Partner struct {
	// id is the immutable public identifier
	id kernel.PublicID

	name  string
	taxID TaxID

	// creditLimit is the maximum amount that may be outstanding at once
	creditLimit kernel.Money

	// creditUsed is the sum of reserved, not yet released amounts
	creditUsed kernel.Money

	active bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPartner registers a new active partner with no credit used.
//
// Example:
//
//	taxID, _ := partner.NewTaxID("12.345.678/0001-95")
//	p, err := partner.NewPartner(gen.NewPublicID(kernel.PartnerIDPrefix), "Acme Ltda", taxID, kernel.MoneyFromInt(10000))
func NewPartner(id kernel.PublicID, name string, taxID TaxID, creditLimit kernel.Money) (*Partner, error) {
	now := time.Now().UTC()
	p := &Partner{
		creditUsed:    kernel.ZeroMoney(),
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setTaxID(taxID),
		p.setCreditLimit(creditLimit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner rebuilds a partner from persisted state, re-checking the ledger invariant.
func RestorePartner(
	id kernel.PublicID,
	name string,
	taxID TaxID,
	creditLimit kernel.Money,
	creditUsed kernel.Money,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Partner, error) {
	p := &Partner{
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setTaxID(taxID),
		p.setCreditLimit(creditLimit),
	); err != nil {
		return nil, err
	}

	if creditUsed.IsNegative() || creditUsed.GreaterThan(creditLimit) {
		return nil, errs.NewValueIsOutOfRangeError("credit used", creditUsed, kernel.ZeroMoney(), creditLimit)
	}
	p.creditUsed = creditUsed

	return p, nil
}

func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}

	return nil
}

func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Partner) ID() kernel.PublicID {
	return p.id
}

func (p *Partner) Name() string {
	return p.name
}

func (p *Partner) TaxID() TaxID {
	return p.taxID
}

func (p *Partner) CreditLimit() kernel.Money {
	return p.creditLimit
}

func (p *Partner) CreditUsed() kernel.Money {
	return p.creditUsed
}

func (p *Partner) IsActive() bool {
	return p.active
}

func (p *Partner) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Partner) UpdatedAt() time.Time {
	return p.updatedAt
}

// AvailableCredit returns creditLimit - creditUsed.
func (p *Partner) AvailableCredit() kernel.Money {
	return p.creditLimit.Sub(p.creditUsed)
}

// HasAvailableCredit reports whether amount could be reserved right now.
func (p *Partner) HasAvailableCredit(amount kernel.Money) bool {
	return !amount.GreaterThan(p.AvailableCredit())
}

// Reserve debits amount against the credit line.
//
// Checks run in this order and stop at the first failure, leaving the
// partner untouched:
//   - amount must be positive (InvalidAmountError)
//   - the partner must be active (InactiveError)
//   - amount must not exceed AvailableCredit (InsufficientCreditError)
func (p *Partner) Reserve(amount kernel.Money) error {
	if !amount.IsPositive() {
		return NewInvalidAmountError(amount)
	}

	if !p.active {
		return NewInactiveError(p.id)
	}

	available := p.AvailableCredit()
	if amount.GreaterThan(available) {
		return NewInsufficientCreditError(p.id, available, amount)
	}

	p.creditUsed = p.creditUsed.Add(amount)
	p.touch()
	return nil
}

// Release credits amount back. The balance is clamped at zero so releasing
// more than was reserved can never drive creditUsed negative.
//
// Release is allowed on an inactive partner: credit held by orders that are
// canceled after deactivation must still be returned.
func (p *Partner) Release(amount kernel.Money) error {
	if !amount.IsPositive() {
		return NewInvalidAmountError(amount)
	}

	p.creditUsed = p.creditUsed.Sub(amount)
	if p.creditUsed.IsNegative() {
		p.creditUsed = kernel.ZeroMoney()
	}
	p.touch()
	return nil
}

func (p *Partner) Activate() {
	if p.active {
		return
	}
	p.active = true
	p.touch()
}

func (p *Partner) Deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.touch()
}

// ChangeCreditLimit sets a new limit. The limit must stay positive and must not
// drop below the credit already in use.
func (p *Partner) ChangeCreditLimit(limit kernel.Money) error {
	if err := p.validateCreditLimit(limit); err != nil {
		return err
	}

	if limit.LessThan(p.creditUsed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"credit limit",
			fmt.Errorf("%s is below the %s already in use", limit, p.creditUsed),
		)
	}

	p.creditLimit = limit
	p.touch()
	return nil
}

func (p *Partner) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Partner) setID(id kernel.PublicID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	if len([]rune(name)) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len([]rune(name)), 1, maxNameLength)
	}

	p.name = name
	return nil
}

func (p *Partner) setTaxID(taxID TaxID) error {
	if err := taxID.Validate(); err != nil {
		return err
	}

	p.taxID = taxID
	return nil
}

func (p *Partner) setCreditLimit(limit kernel.Money) error {
	if err := p.validateCreditLimit(limit); err != nil {
		return err
	}

	p.creditLimit = limit
	return nil
}

func (p *Partner) validateCreditLimit(limit kernel.Money) error {
	if !limit.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"credit limit",
			fmt.Errorf("%s is not greater than 0", limit),
		)
	}

	if limit.Scale() > kernel.MoneyScale {
		return errs.NewValueIsInvalidErrorWithCause(
			"credit limit",
			fmt.Errorf("%s has more than %d decimal places", limit, kernel.MoneyScale),
		)
	}

	return nil
}
