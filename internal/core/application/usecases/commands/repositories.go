// Package commands contains business operations that modify orders and kitchen tickets.
// Every command is built by a constructor that validates its input and is executed by a
// handler that serializes read-modify-write work per order number.
package commands

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/domain/model/order"
)

// KeyLocker serializes mutations of one aggregate. Handlers take the lock for the
// order number they are about to read and write back, so a status update cannot
// overwrite a concurrent assignment and two reconciles cannot interleave.
type KeyLocker interface {
	Lock(key string) (unlock func())
}

// lockFor acquires the per-order lock.
func lockFor(locker KeyLocker, number kernel.OrderNumber) (unlock func()) {
	return locker.Lock(number.String())
}

// OrderStatusOf maps a kitchen status onto the customer-facing order status.
func OrderStatusOf(status kitchen.Status) (order.Status, error) {
	switch status {
	case kitchen.Pending:
		return order.Pending, nil
	case kitchen.Preparing:
		return order.Preparing, nil
	case kitchen.Ready:
		return order.Ready, nil
	case kitchen.Completed:
		return order.Completed, nil
	default:
		return order.Unknown, status.Validate()
	}
}
