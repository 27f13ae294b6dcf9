package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetTicketQueryIsNotConstructed = errors.New(
		"GetTicketQuery must be created via NewGetTicketQuery constructor",
	)
)

type GetTicketQuery struct {
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewGetTicketQuery(number kernel.OrderNumber) (GetTicketQuery, error) {
	if err := number.Validate(); err != nil {
		return GetTicketQuery{}, err
	}
	return GetTicketQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketQueryIsNotConstructed)
}

func (q GetTicketQuery) Number() kernel.OrderNumber {
	return q.number
}

type GetTicketQueryHandler struct {
	tickets ports.TicketRepository
}

func NewGetTicketQueryHandler(tickets ports.TicketRepository) GetTicketQueryHandler {
	return GetTicketQueryHandler{tickets: tickets}
}

func (h GetTicketQueryHandler) Handle(ctx context.Context, query GetTicketQuery) (*kitchen.Ticket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.tickets.Get(ctx, query.Number())
}
