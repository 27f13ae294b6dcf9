package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var (
	ErrRedispatchFailedCommandIsNotConstructed = errors.New(
		"RedispatchFailedCommand must be created via NewRedispatchFailedCommand constructor",
	)
)

// RedispatchFailedCommand retries every order waiting in the dispatch queue.
type RedispatchFailedCommand struct {
	guard guard.ConstructorGuard
}

func NewRedispatchFailedCommand() RedispatchFailedCommand {
	return RedispatchFailedCommand{guard: guard.NewConstructorGuard()}
}

func (c RedispatchFailedCommand) Validate() error {
	return c.guard.Validate(ErrRedispatchFailedCommandIsNotConstructed)
}

// RedispatchResult summarizes one pass over the dispatch queue.
type RedispatchResult struct {
	Dispatched int
	Dropped    int
	Remaining  int
}

// RedispatchFailedCommandHandler drains the dispatch queue.
//
// For each queued order:
//   - a ticket is created; a ticket that already exists counts as delivered
//   - an order that no longer exists is dropped from the queue
//   - any other failure keeps the order queued with a bumped attempt count
type RedispatchFailedCommandHandler struct {
	queue    ports.DispatchQueue
	orders   ports.OrderRepository
	dispatch DispatchTicketCommandHandler
	clock    clockwork.Clock
	logger   *zap.Logger
}

func NewRedispatchFailedCommandHandler(
	queue ports.DispatchQueue,
	orders ports.OrderRepository,
	dispatch DispatchTicketCommandHandler,
	clock clockwork.Clock,
	logger *zap.Logger,
) RedispatchFailedCommandHandler {
	return RedispatchFailedCommandHandler{
		queue:    queue,
		orders:   orders,
		dispatch: dispatch,
		clock:    clock,
		logger:   logger,
	}
}

func (h RedispatchFailedCommandHandler) Handle(ctx context.Context, cmd RedispatchFailedCommand) (RedispatchResult, error) {
	var result RedispatchResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	pending, err := h.queue.Pending(ctx)
	if err != nil {
		return result, err
	}

	for _, failure := range pending {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		log := h.logger.With(
			zap.String("orderNumber", failure.OrderNumber.String()),
			zap.Int("attempts", failure.Attempts),
		)

		o, getErr := h.orders.Get(ctx, failure.OrderNumber)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			log.Info("queued order no longer exists, dropping")
			if err = h.queue.Remove(ctx, failure.OrderNumber); err != nil {
				return result, err
			}
			result.Dropped++
			continue
		}

		dispatchErr := getErr
		if dispatchErr == nil {
			dispatchErr = h.redispatch(ctx, o)
		}

		if dispatchErr != nil {
			log.Warn("re-dispatch failed", zap.Error(dispatchErr))
			if err = h.queue.Push(ctx, failure.OrderNumber, dispatchErr.Error(), h.clock.Now()); err != nil {
				return result, err
			}
			result.Remaining++
			continue
		}

		if err = h.queue.Remove(ctx, failure.OrderNumber); err != nil {
			return result, err
		}
		result.Dispatched++
	}

	return result, nil
}

func (h RedispatchFailedCommandHandler) redispatch(ctx context.Context, o *order.Order) error {
	cmd, err := NewDispatchTicketCommandFromOrder(o)
	if err != nil {
		return err
	}

	_, err = h.dispatch.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return nil
	}
	return err
}
