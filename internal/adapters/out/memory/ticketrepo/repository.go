// Package ticketrepo keeps kitchen tickets in process memory, one per order number.
package ticketrepo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/pkg/errs"
)

// MemoryTicketRepository implements ports.TicketRepository over a map.
type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*kitchen.Ticket
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{tickets: make(map[string]*kitchen.Ticket)}
}

func (r *MemoryTicketRepository) Add(_ context.Context, ticket *kitchen.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := ticket.OrderNumber().String()
	if _, ok := r.tickets[key]; ok {
		return errs.NewObjectAlreadyExistsError("orderNumber", key)
	}
	r.tickets[key] = ticket.Clone()
	return nil
}

func (r *MemoryTicketRepository) Update(_ context.Context, ticket *kitchen.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := ticket.OrderNumber().String()
	if _, ok := r.tickets[key]; !ok {
		return errs.NewObjectNotFoundError("orderNumber", key)
	}
	r.tickets[key] = ticket.Clone()
	return nil
}

func (r *MemoryTicketRepository) Get(_ context.Context, number kernel.OrderNumber) (*kitchen.Ticket, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tickets[number.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
	}
	return stored.Clone(), nil
}

func (r *MemoryTicketRepository) List(_ context.Context) ([]*kitchen.Ticket, error) {
	r.mu.RLock()
	result := make([]*kitchen.Ticket, 0, len(r.tickets))
	for _, stored := range r.tickets {
		result = append(result, stored.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b *kitchen.Ticket) int {
		if c := a.SentToKitchenAt().Compare(b.SentToKitchenAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.OrderNumber().String(), b.OrderNumber().String())
	})
	return result, nil
}

func (r *MemoryTicketRepository) Delete(_ context.Context, number kernel.OrderNumber) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[number.String()]; !ok {
		return false, nil
	}
	delete(r.tickets, number.String())
	return true, nil
}
