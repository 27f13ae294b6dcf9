package commands

import (
	"context"

	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

type AssignTicketCommandHandler struct {
	tickets ports.TicketRepository
	locks   KeyLocker
	clock   clockwork.Clock
}

func NewAssignTicketCommandHandler(
	tickets ports.TicketRepository,
	locks KeyLocker,
	clock clockwork.Clock,
) AssignTicketCommandHandler {
	return AssignTicketCommandHandler{tickets: tickets, locks: locks, clock: clock}
}

func (h AssignTicketCommandHandler) Handle(ctx context.Context, cmd AssignTicketCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := lockFor(h.locks, cmd.Number())
	defer unlock()

	ticket, err := h.tickets.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = ticket.Assign(cmd.StaffName(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = h.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
