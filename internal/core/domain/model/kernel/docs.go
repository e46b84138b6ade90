// Package kernel provides the domain primitives shared by the partner and order
// aggregates.
//
// The package includes:
//   - PublicID: the opaque identifier of an aggregate, validated on parse
//   - PublicIDGenerator: the injectable source of new identifiers, with a random
//     implementation for production and a sequential one for deterministic tests
//   - Money: an immutable decimal amount with explicit half-up rounding to two places
//
// All values are immutable and safe for concurrent use.
package kernel
