package commands

import (
	"errors"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrDispatchTicketCommandIsNotConstructed = errors.New(
		"DispatchTicketCommand must be created via NewDispatchTicketCommand constructor",
	)
)

// DispatchTicketCommand sends an order to the kitchen. Item validation is left to
// the ticket so that an empty order fails with InvalidTicketError.
type DispatchTicketCommand struct { //nolint:recvcheck //using for validation
	number    kernel.OrderNumber
	items     []kernel.LineItem
	createdAt time.Time
	userID    *string

	guard guard.ConstructorGuard
}

func NewDispatchTicketCommand(
	number kernel.OrderNumber,
	items []kernel.LineItem,
	createdAt time.Time,
	userID *string,
) (DispatchTicketCommand, error) {
	if err := number.Validate(); err != nil {
		return DispatchTicketCommand{}, err
	}
	return DispatchTicketCommand{
		number:    number,
		items:     slices.Clone(items),
		createdAt: createdAt,
		userID:    normalizeUserID(userID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewDispatchTicketCommandFromOrder builds the dispatch of a placed order.
func NewDispatchTicketCommandFromOrder(o *order.Order) (DispatchTicketCommand, error) {
	if err := o.Validate(); err != nil {
		return DispatchTicketCommand{}, err
	}
	return NewDispatchTicketCommand(o.Number(), o.Items(), o.CreatedAt(), o.UserID())
}

func (c DispatchTicketCommand) Validate() error {
	return c.guard.Validate(ErrDispatchTicketCommandIsNotConstructed)
}

func (c DispatchTicketCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c DispatchTicketCommand) Items() []kernel.LineItem {
	return slices.Clone(c.items)
}

func (c DispatchTicketCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c DispatchTicketCommand) UserID() *string {
	return normalizeUserID(c.userID)
}
