package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// SetOrderStatusCommandHandler applies a status without transition checks.
type SetOrderStatusCommandHandler struct {
	orders ports.OrderRepository
	locks  KeyLocker
}

func NewSetOrderStatusCommandHandler(orders ports.OrderRepository, locks KeyLocker) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{orders: orders, locks: locks}
}

func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := lockFor(h.locks, cmd.Number())
	defer unlock()

	o, err := h.orders.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = o.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
