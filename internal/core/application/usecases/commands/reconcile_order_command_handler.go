package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ReconcileOrderCommandHandler advances an order to its ticket's status.
//
// Business rules:
//   - the order only moves forward: pending < preparing < ready < completed
//   - a ticket status that does not strictly advance the order is ignored, so a
//     stale poll arriving after a newer one changes nothing
//   - an order without a ticket is returned unchanged
//   - the whole read-compare-write runs under the order's lock
type ReconcileOrderCommandHandler struct {
	orders  ports.OrderRepository
	tickets ports.TicketRepository
	locks   KeyLocker
}

func NewReconcileOrderCommandHandler(
	orders ports.OrderRepository,
	tickets ports.TicketRepository,
	locks KeyLocker,
) ReconcileOrderCommandHandler {
	return ReconcileOrderCommandHandler{orders: orders, tickets: tickets, locks: locks}
}

func (h ReconcileOrderCommandHandler) Handle(ctx context.Context, cmd ReconcileOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := lockFor(h.locks, cmd.Number())
	defer unlock()

	o, err := h.orders.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	ticket, err := h.tickets.Get(ctx, cmd.Number())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return o, nil
	}
	if err != nil {
		return nil, err
	}

	next, err := OrderStatusOf(ticket.Status())
	if err != nil {
		return nil, err
	}

	changed, err := o.AdvanceTo(next)
	if err != nil {
		return nil, err
	}
	if !changed {
		return o, nil
	}

	if err = h.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
