package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand creates an order and dispatches it to the kitchen.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	create CreateOrderCommand

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(items []kernel.LineItem, userID *string) (PlaceOrderCommand, error) {
	create, err := NewCreateOrderCommand(items, userID)
	if err != nil {
		return PlaceOrderCommand{}, err
	}
	return PlaceOrderCommand{create: create, guard: guard.NewConstructorGuard()}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Items() []kernel.LineItem {
	return c.create.Items()
}

func (c PlaceOrderCommand) UserID() *string {
	return c.create.UserID()
}
