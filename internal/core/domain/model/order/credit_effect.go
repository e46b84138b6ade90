package order

// CreditEffect is the ledger movement a status transition requires.
type CreditEffect int

const (
	// NoCreditEffect transitions never touch the ledger and take no partner lock.
	NoCreditEffect CreditEffect = iota

	// ReserveCredit debits the order total from the partner (Pending -> Approved).
	ReserveCredit

	// ReleaseCredit credits the order total back to the partner (Approved -> Canceled).
	ReleaseCredit
)

// CreditEffectOf returns the ledger movement for from -> to. It does not check
// whether the transition itself is allowed.
func CreditEffectOf(from, to Status) CreditEffect {
	switch {
	case from == Pending && to == Approved:
		return ReserveCredit
	case from == Approved && to == Canceled:
		return ReleaseCredit
	default:
		return NoCreditEffect
	}
}

func (e CreditEffect) String() string {
	switch e {
	case ReserveCredit:
		return "reserve"
	case ReleaseCredit:
		return "release"
	default:
		return "none"
	}
}

// HoldsCredit reports whether an order in status s has its total reserved
// against the partner. Credit is reserved on entering Approved and released
// only by Approved -> Canceled, so Delivered orders keep holding it.
func (s Status) HoldsCredit() bool {
	switch s {
	case Approved, Processing, Shipped, Delivered:
		return true
	default:
		return false
	}
}

// CreditHoldingStatuses returns every status for which HoldsCredit is true.
func CreditHoldingStatuses() []Status {
	out := make([]Status, 0, 4)
	for _, s := range AllStatuses() {
		if s.HoldsCredit() {
			out = append(out, s)
		}
	}
	return out
}
