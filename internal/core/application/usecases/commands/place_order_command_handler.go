package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// PlaceOrderCommandHandler stores the order first and dispatches its ticket second.
// A failed dispatch does not undo the order: the failure is logged, the order stays
// pending and its number is pushed to the dispatch queue for RedispatchFailedCommandHandler.
type PlaceOrderCommandHandler struct {
	create   CreateOrderCommandHandler
	dispatch DispatchTicketCommandHandler
	queue    ports.DispatchQueue
	clock    clockwork.Clock
	logger   *zap.Logger
}

func NewPlaceOrderCommandHandler(
	create CreateOrderCommandHandler,
	dispatch DispatchTicketCommandHandler,
	queue ports.DispatchQueue,
	clock clockwork.Clock,
	logger *zap.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		create:   create,
		dispatch: dispatch,
		queue:    queue,
		clock:    clock,
		logger:   logger,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	createCmd, err := NewCreateOrderCommand(cmd.Items(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	o, err := h.create.Handle(ctx, createCmd)
	if err != nil {
		return nil, err
	}

	dispatchCmd, err := NewDispatchTicketCommandFromOrder(o)
	if err == nil {
		_, err = h.dispatch.Handle(ctx, dispatchCmd)
	}
	if err != nil {
		h.logger.Warn("kitchen dispatch failed, order queued for re-dispatch",
			zap.String("orderNumber", o.Number().String()),
			zap.Error(err),
		)
		if pushErr := h.queue.Push(ctx, o.Number(), err.Error(), h.clock.Now()); pushErr != nil {
			h.logger.Error("failed to queue order for re-dispatch",
				zap.String("orderNumber", o.Number().String()),
				zap.Error(pushErr),
			)
		}
	}

	return o, nil
}
