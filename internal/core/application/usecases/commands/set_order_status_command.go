package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrSetOrderStatusCommandIsNotConstructed = errors.New(
		"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
	)
)

// SetOrderStatusCommand overwrites an order's status. It is the administrative
// override; regular progress flows through ReconcileOrderCommand.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber
	status order.Status

	guard guard.ConstructorGuard
}

func NewSetOrderStatusCommand(number kernel.OrderNumber, status order.Status) (SetOrderStatusCommand, error) {
	if err := errors.Join(number.Validate(), status.Validate()); err != nil {
		return SetOrderStatusCommand{}, err
	}
	return SetOrderStatusCommand{number: number, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}
