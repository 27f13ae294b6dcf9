// Package kitchen holds the fulfillment-side mirror of an order.
//
// A Ticket is dispatched once per order number and is then driven by kitchen
// staff: status changes, preparation estimates and staff assignment. Its
// status space matches order.Status but is tracked independently; only the
// synchronizer copies ticket status onto the order.
package kitchen
