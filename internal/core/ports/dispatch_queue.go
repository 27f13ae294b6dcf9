package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// DispatchFailure records an order whose kitchen ticket could not be created.
type DispatchFailure struct {
	OrderNumber kernel.OrderNumber
	Reason      string
	Attempts    int
	FailedAt    time.Time
}

// DispatchQueue is the dead-letter list of orders awaiting re-dispatch.
type DispatchQueue interface {
	// Push records a failure. Pushing an order that is already queued bumps its
	// attempt count and keeps its position.
	Push(ctx context.Context, number kernel.OrderNumber, reason string, failedAt time.Time) error

	// Pending returns queued failures, oldest first.
	Pending(ctx context.Context) ([]DispatchFailure, error)

	// Remove drops an order from the queue.
	Remove(ctx context.Context, number kernel.OrderNumber) error
}
