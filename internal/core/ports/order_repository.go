package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. It fails with ObjectAlreadyExistsError when the
	// order number is taken; callers generate a new number and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order. Returns ObjectNotFoundError if it is missing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its number.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// List returns orders oldest first. A non-nil userID restricts the result
	// to that user's orders.
	List(ctx context.Context, userID *string) ([]*order.Order, error)

	// Delete removes an order and reports whether it existed.
	Delete(ctx context.Context, number kernel.OrderNumber) (bool, error)
}
