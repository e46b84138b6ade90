package partner

import (
	"fmt"
	"strings"

	"orderhub/internal/pkg/errs"
)

const taxIDLength = 14

// TaxID is a partner's 14-digit company registration number. Formatting
// characters ('.', '/', '-', ' ') are stripped on parse.
type TaxID struct {
	digits string
}

func NewTaxID(raw string) (TaxID, error) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case '.', '/', '-', ' ':
			return -1
		}
		return r
	}, raw)

	if digits == "" {
		return TaxID{}, errs.NewValueIsRequiredError("tax id")
	}

	if len(digits) != taxIDLength || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return TaxID{}, errs.NewValueIsInvalidErrorWithCause(
			"tax id",
			fmt.Errorf("%q must have exactly %d digits", raw, taxIDLength),
		)
	}

	return TaxID{digits: digits}, nil
}

func (t TaxID) String() string {
	return t.digits
}

func (t TaxID) IsEqual(other TaxID) bool {
	return t.digits == other.digits
}

func (t TaxID) Validate() error {
	if t.digits == "" {
		return errs.NewValueIsRequiredError("tax id")
	}
	return nil
}
