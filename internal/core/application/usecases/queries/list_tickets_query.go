package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var (
	ErrListTicketsQueryIsNotConstructed = errors.New(
		"ListTicketsQuery must be created via NewListTicketsQuery constructor",
	)
)

// ListTicketsQuery returns the kitchen board, optionally only tickets in one status.
type ListTicketsQuery struct {
	status *kitchen.Status

	guard guard.ConstructorGuard
}

// NewListTicketsQuery validates the optional status filter.
func NewListTicketsQuery(status *kitchen.Status) (ListTicketsQuery, error) {
	q := ListTicketsQuery{guard: guard.NewConstructorGuard()}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListTicketsQuery{}, err
		}
		v := *status
		q.status = &v
	}
	return q, nil
}

func (q ListTicketsQuery) Validate() error {
	return q.guard.Validate(ErrListTicketsQueryIsNotConstructed)
}

func (q ListTicketsQuery) Status() *kitchen.Status {
	return q.status
}

type ListTicketsQueryHandler struct {
	tickets ports.TicketRepository
}

func NewListTicketsQueryHandler(tickets ports.TicketRepository) ListTicketsQueryHandler {
	return ListTicketsQueryHandler{tickets: tickets}
}

func (h ListTicketsQueryHandler) Handle(ctx context.Context, query ListTicketsQuery) ([]*kitchen.Ticket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets, err := h.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	if query.Status() == nil {
		return tickets, nil
	}

	filtered := make([]*kitchen.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Status() == *query.Status() {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
