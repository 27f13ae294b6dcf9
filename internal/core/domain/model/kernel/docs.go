// Package kernel provides the value objects shared by the order and kitchen aggregates.
//
// The package includes:
//   - Money: a non-negative decimal amount kept at full precision and rounded
//     to two places only when presented
//   - OrderNumber: the globally unique, human-readable order identifier that also
//     keys the kitchen ticket
//
// Both are immutable and safe for concurrent use.
package kernel
