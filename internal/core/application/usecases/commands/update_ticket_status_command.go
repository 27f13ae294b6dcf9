package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateTicketStatusCommandIsNotConstructed = errors.New(
		"UpdateTicketStatusCommand must be created via NewUpdateTicketStatusCommand constructor",
	)
)

// UpdateTicketStatusCommand moves a ticket to a kitchen status, optionally with a
// new preparation estimate in minutes.
type UpdateTicketStatusCommand struct { //nolint:recvcheck //using for validation
	number          kernel.OrderNumber
	status          kitchen.Status
	prepTimeMinutes *int

	guard guard.ConstructorGuard
}

func NewUpdateTicketStatusCommand(
	number kernel.OrderNumber,
	status kitchen.Status,
	prepTimeMinutes *int,
) (UpdateTicketStatusCommand, error) {
	if err := errors.Join(number.Validate(), status.Validate()); err != nil {
		return UpdateTicketStatusCommand{}, err
	}

	cmd := UpdateTicketStatusCommand{number: number, status: status, guard: guard.NewConstructorGuard()}
	if prepTimeMinutes != nil {
		v := *prepTimeMinutes
		cmd.prepTimeMinutes = &v
	}
	return cmd, nil
}

func (c UpdateTicketStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTicketStatusCommandIsNotConstructed)
}

func (c UpdateTicketStatusCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c UpdateTicketStatusCommand) Status() kitchen.Status {
	return c.status
}

func (c UpdateTicketStatusCommand) PrepTimeMinutes() *int {
	if c.prepTimeMinutes == nil {
		return nil
	}
	v := *c.prepTimeMinutes
	return &v
}
