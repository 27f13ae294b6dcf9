package commands

import (
	"context"

	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/ports"

	"github.com/jonboulle/clockwork"
)

type UpdateTicketStatusCommandHandler struct {
	tickets ports.TicketRepository
	locks   KeyLocker
	clock   clockwork.Clock
}

func NewUpdateTicketStatusCommandHandler(
	tickets ports.TicketRepository,
	locks KeyLocker,
	clock clockwork.Clock,
) UpdateTicketStatusCommandHandler {
	return UpdateTicketStatusCommandHandler{tickets: tickets, locks: locks, clock: clock}
}

func (h UpdateTicketStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTicketStatusCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := lockFor(h.locks, cmd.Number())
	defer unlock()

	ticket, err := h.tickets.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = ticket.UpdateStatus(cmd.Status(), cmd.PrepTimeMinutes(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = h.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
