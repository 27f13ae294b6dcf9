// Package services provides domain services that work over collections of
// aggregates rather than a single one.
//
// The package includes:
//   - OrderHistory: search and recency views over a user's past orders
package services
