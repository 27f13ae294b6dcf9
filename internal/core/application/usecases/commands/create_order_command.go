package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand asks to turn a cart into a priced pending order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(items, &userID)
//	if err != nil {
//	    return err // InvalidCartError for an empty cart
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items  []kernel.LineItem
	userID *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that the cart is not empty. A nil or blank userID
// places a guest order.
func NewCreateOrderCommand(items []kernel.LineItem, userID *string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.userID = normalizeUserID(userID)

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Items() []kernel.LineItem {
	return slices.Clone(c.items)
}

func (c CreateOrderCommand) UserID() *string {
	return normalizeUserID(c.userID)
}

func (c *CreateOrderCommand) setItems(items []kernel.LineItem) error {
	if len(items) == 0 {
		return errs.NewInvalidCartError("cart is empty")
	}
	c.items = slices.Clone(items)
	return nil
}

func normalizeUserID(userID *string) *string {
	if userID == nil || *userID == "" {
		return nil
	}
	v := *userID
	return &v
}
