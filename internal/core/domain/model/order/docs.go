// Package order contains the Order aggregate, its Item value objects and the
// status state machine.
//
// The transition table in status.go is the single source of truth for status
// changes; Order.ChangeStatus adds the approval guard on top of it. The total
// is always RecalculateTotal(items): a pure function over the lines, so no line
// ever reaches back into its order.
//
// CreditEffectOf tells the application layer which transitions move partner
// credit (Pending -> Approved reserves, Approved -> Canceled releases); every
// other transition is credit-neutral.
package order
