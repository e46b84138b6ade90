package partner

import (
	"errors"
	"fmt"

	"orderhub/internal/core/domain/model/kernel"
)

var (
	// ErrInsufficientCredit is the sentinel behind InsufficientCreditError.
	ErrInsufficientCredit = errors.New("insufficient credit")

	// ErrPartnerInactive is the sentinel behind InactiveError.
	ErrPartnerInactive = errors.New("partner is inactive")

	// ErrInvalidAmount is the sentinel behind InvalidAmountError.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// InsufficientCreditError is returned by Reserve when the requested amount exceeds
// the partner's available credit.
type InsufficientCreditError struct {
	PartnerID kernel.PublicID
	Available kernel.Money
	Requested kernel.Money
}

func NewInsufficientCreditError(partnerID kernel.PublicID, available, requested kernel.Money) *InsufficientCreditError {
	return &InsufficientCreditError{
		PartnerID: partnerID,
		Available: available,
		Requested: requested,
	}
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("%s: partner %s has %s available, %s requested",
		ErrInsufficientCredit, e.PartnerID, e.Available, e.Requested)
}

func (e *InsufficientCreditError) Unwrap() error {
	return ErrInsufficientCredit
}

// InactiveError is returned by ledger operations against a deactivated partner.
type InactiveError struct {
	PartnerID kernel.PublicID
}

func NewInactiveError(partnerID kernel.PublicID) *InactiveError {
	return &InactiveError{PartnerID: partnerID}
}

func (e *InactiveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPartnerInactive, e.PartnerID)
}

func (e *InactiveError) Unwrap() error {
	return ErrPartnerInactive
}

// InvalidAmountError is returned when a ledger amount is zero or negative.
type InvalidAmountError struct {
	Amount kernel.Money
}

func NewInvalidAmountError(amount kernel.Money) *InvalidAmountError {
	return &InvalidAmountError{Amount: amount}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: got %s", ErrInvalidAmount, e.Amount)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
