package order

import (
	"fmt"
	"strings"

	"orderhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Approved ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Canceled
//
// Delivered and Canceled are terminal. The transition table returned by
// getTransitions is the only place transitions are defined.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is an order that exists but holds no credit.
	Pending

	// Approved holds the order total as reserved partner credit.
	Approved

	Processing
	Shipped

	// Delivered is terminal.
	Delivered

	// Canceled is terminal. An order canceled from Approved has had its credit released.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Approved:   "APPROVED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// getTransitions is the transition table: source status to the statuses it may move to.
// Terminal statuses map to an empty slice.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no transitions and is rejected by Validate
	return map[Status][]Status{
		Pending:    {Approved, Canceled},
		Approved:   {Processing, Canceled},
		Processing: {Shipped},
		Shipped:    {Delivered},
		Delivered:  {},
		Canceled:   {},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Approved, Processing, Shipped, Delivered, Canceled}
}

// ParseStatus converts the persisted or transport representation ("APPROVED")
// back into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == upper {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AllowedTransitions returns the statuses s may move to, in table order.
func (s Status) AllowedTransitions() []Status {
	targets := getTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether (s, target) is present in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
}

// TransitionTo returns target if the table allows it and an InvalidTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}

	return target, nil
}
