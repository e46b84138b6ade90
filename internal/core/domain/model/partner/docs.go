// Package partner contains the Partner aggregate: a B2B counterparty together
// with the revolving credit line that orders are debited against.
//
// The aggregate owns the ledger rules. Reserve checks the amount, the partner's
// status and the available credit before it debits; Release credits back and
// clamps the balance at zero. Serializing those calls per partner is the job of
// the caller, which loads the partner under an exclusive row lock inside the
// transaction that also persists the affected order.
package partner
