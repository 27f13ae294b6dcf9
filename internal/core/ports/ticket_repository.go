package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
)

// TicketRepository defines the persistence contract for kitchen tickets.
// At most one ticket exists per order number.
type TicketRepository interface {
	// Add persists a dispatched ticket. A second ticket for the same order number
	// fails with ObjectAlreadyExistsError.
	Add(ctx context.Context, ticket *kitchen.Ticket) error

	Update(ctx context.Context, ticket *kitchen.Ticket) error

	Get(ctx context.Context, number kernel.OrderNumber) (*kitchen.Ticket, error)

	// List returns all tickets ordered by dispatch time.
	List(ctx context.Context) ([]*kitchen.Ticket, error)

	Delete(ctx context.Context, number kernel.OrderNumber) (bool, error)
}
