package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrAssignTicketCommandIsNotConstructed = errors.New(
		"AssignTicketCommand must be created via NewAssignTicketCommand constructor",
	)
)

// AssignTicketCommand hands a ticket to a member of kitchen staff. The staff name is
// checked by the ticket itself, after the ticket is found.
type AssignTicketCommand struct { //nolint:recvcheck //using for validation
	number    kernel.OrderNumber
	staffName string

	guard guard.ConstructorGuard
}

func NewAssignTicketCommand(number kernel.OrderNumber, staffName string) (AssignTicketCommand, error) {
	if err := number.Validate(); err != nil {
		return AssignTicketCommand{}, err
	}
	return AssignTicketCommand{number: number, staffName: staffName, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignTicketCommand) Validate() error {
	return c.guard.Validate(ErrAssignTicketCommandIsNotConstructed)
}

func (c AssignTicketCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c AssignTicketCommand) StaffName() string {
	return c.staffName
}
