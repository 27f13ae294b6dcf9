package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// MaxOrderNumberAttempts bounds how many generated numbers are tried before giving up.
const MaxOrderNumberAttempts = 5

// CreateOrderCommandHandler prices a cart and stores it under a fresh order number.
// The repository rejects duplicate numbers; the handler draws a new number and retries.
type CreateOrderCommandHandler struct {
	orders   ports.OrderRepository
	clock    clockwork.Clock
	generate kernel.OrderNumberGenerator
	taxRate  decimal.Decimal
}

func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	clock clockwork.Clock,
	generate kernel.OrderNumberGenerator,
	taxRate decimal.Decimal,
) CreateOrderCommandHandler {
	if generate == nil {
		generate = kernel.NewOrderNumber
	}
	return CreateOrderCommandHandler{
		orders:   orders,
		clock:    clock,
		generate: generate,
		taxRate:  taxRate,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range MaxOrderNumberAttempts {
		now := h.clock.Now()

		o, err := order.NewOrder(h.generate(now), cmd.Items(), cmd.UserID(), now, h.taxRate)
		if err != nil {
			return nil, err
		}

		err = h.orders.Add(ctx, o)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}

	return nil, errs.NewStorageError(
		fmt.Sprintf("no unique order number after %d attempts", MaxOrderNumberAttempts),
		lastErr,
	)
}
