package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeleteTicketCommandIsNotConstructed = errors.New(
		"DeleteTicketCommand must be created via NewDeleteTicketCommand constructor",
	)
)

type DeleteTicketCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewDeleteTicketCommand(number kernel.OrderNumber) (DeleteTicketCommand, error) {
	if err := number.Validate(); err != nil {
		return DeleteTicketCommand{}, err
	}
	return DeleteTicketCommand{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTicketCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTicketCommandIsNotConstructed)
}

func (c DeleteTicketCommand) Number() kernel.OrderNumber {
	return c.number
}

type DeleteTicketCommandHandler struct {
	tickets ports.TicketRepository
	locks   KeyLocker
}

func NewDeleteTicketCommandHandler(tickets ports.TicketRepository, locks KeyLocker) DeleteTicketCommandHandler {
	return DeleteTicketCommandHandler{tickets: tickets, locks: locks}
}

func (h DeleteTicketCommandHandler) Handle(ctx context.Context, cmd DeleteTicketCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	unlock := lockFor(h.locks, cmd.Number())
	defer unlock()

	return h.tickets.Delete(ctx, cmd.Number())
}
