package commands

import (
	"context"

	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

// DispatchTicketCommandHandler creates the kitchen ticket of an order. A second
// dispatch of the same order number fails with ObjectAlreadyExistsError.
type DispatchTicketCommandHandler struct {
	tickets         ports.TicketRepository
	clock           clockwork.Clock
	prepTimeMinutes int
}

// NewDispatchTicketCommandHandler uses prepTimeMinutes as the initial estimate, or
// kitchen.DefaultPrepTimeMinutes when it is not positive.
func NewDispatchTicketCommandHandler(
	tickets ports.TicketRepository,
	clock clockwork.Clock,
	prepTimeMinutes int,
) DispatchTicketCommandHandler {
	if prepTimeMinutes <= 0 {
		prepTimeMinutes = kitchen.DefaultPrepTimeMinutes
	}
	return DispatchTicketCommandHandler{tickets: tickets, clock: clock, prepTimeMinutes: prepTimeMinutes}
}

func (h DispatchTicketCommandHandler) Handle(ctx context.Context, cmd DispatchTicketCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ticket, err := kitchen.NewTicket(
		cmd.Number(),
		cmd.Items(),
		cmd.CreatedAt(),
		cmd.UserID(),
		h.prepTimeMinutes,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.tickets.Add(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
