package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(number kernel.OrderNumber) (DeleteOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// DeleteOrderCommandHandler removes an order. The kitchen ticket, if any, is left alone.
type DeleteOrderCommandHandler struct {
	orders ports.OrderRepository
	locks  KeyLocker
}

func NewDeleteOrderCommandHandler(orders ports.OrderRepository, locks KeyLocker) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders, locks: locks}
}

// Handle reports whether an order was removed.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	unlock := lockFor(h.locks, cmd.Number())
	defer unlock()

	return h.orders.Delete(ctx, cmd.Number())
}
