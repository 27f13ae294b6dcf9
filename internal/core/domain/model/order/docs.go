// Package order provides the customer-facing Order aggregate of the ordering system.
//
// The package includes:
//   - Order: the aggregate root, an immutable priced purchase whose only mutable
//     field is its status
//   - Totals: subtotal, tax and total derived once from the line items
//   - Status: the lifecycle enum Pending -> Preparing -> Ready -> Completed
//
// Key business rules:
//   - An order has at least one line item, each with quantity >= 1 and price >= 0
//   - Totals are computed exactly once at creation with full decimal precision
//   - SetStatus overwrites unconditionally (administrative override)
//   - AdvanceTo only moves the status strictly forward and is a no-op otherwise
package order
