package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrReconcileOrderCommandIsNotConstructed = errors.New(
		"ReconcileOrderCommand must be created via NewReconcileOrderCommand constructor",
	)
)

// ReconcileOrderCommand copies the kitchen's progress onto the customer's order.
type ReconcileOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewReconcileOrderCommand(number kernel.OrderNumber) (ReconcileOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return ReconcileOrderCommand{}, err
	}
	return ReconcileOrderCommand{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileOrderCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderCommandIsNotConstructed)
}

func (c ReconcileOrderCommand) Number() kernel.OrderNumber {
	return c.number
}
