package kernel

import (
	"fmt"
	"strings"

	"orderhub/internal/pkg/errs"
)

const maxPublicIDLength = 20

// ErrPublicIDIsNotConstructed indicates a zero-value PublicID.
var ErrPublicIDIsNotConstructed = errs.NewValueIsRequiredError(
	"PublicID must be created via PublicIDFromString or a PublicIDGenerator",
)

// PublicID is the opaque, externally visible identifier of an aggregate,
// e.g. "PTN_7K2Q9XAB" for a partner or "ORD_M3ZP0C1D" for an order.
// It is immutable once assigned.
//
// The zero value is invalid.
type PublicID struct {
	value string
}

// PublicIDFromString parses an identifier received from storage or from a client.
// Only upper-case letters, digits and underscores are accepted, up to 20 characters.
func PublicIDFromString(s string) (PublicID, error) {
	if s == "" {
		return PublicID{}, ErrPublicIDIsNotConstructed
	}

	if len(s) > maxPublicIDLength {
		return PublicID{}, errs.NewValueIsOutOfRangeError("public id length", len(s), 1, maxPublicIDLength)
	}

	if strings.IndexFunc(s, func(r rune) bool {
		return (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_'
	}) >= 0 {
		return PublicID{}, errs.NewValueIsInvalidErrorWithCause(
			"public id",
			fmt.Errorf("%q contains characters outside [A-Z0-9_]", s),
		)
	}

	return PublicID{value: s}, nil
}

// MustPublicIDFromString is PublicIDFromString for literals known to be valid.
func MustPublicIDFromString(s string) PublicID {
	id, err := PublicIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id PublicID) String() string {
	return id.value
}

func (id PublicID) IsEqual(other PublicID) bool {
	return id.value == other.value
}

// Validate returns ErrPublicIDIsNotConstructed for the zero value.
func (id PublicID) Validate() error {
	if id.value == "" {
		return ErrPublicIDIsNotConstructed
	}
	return nil
}
