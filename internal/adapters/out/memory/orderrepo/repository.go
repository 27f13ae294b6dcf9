// Package orderrepo keeps orders in process memory, keyed by order number.
package orderrepo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository over a map. Stored
// orders are cloned on the way in and on the way out.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]*order.Order)}
}

func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.Number().String()
	if _, ok := r.orders[key]; ok {
		return errs.NewObjectAlreadyExistsError("orderNumber", key)
	}
	r.orders[key] = aggregate.Clone()
	return nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.Number().String()
	if _, ok := r.orders[key]; !ok {
		return errs.NewObjectNotFoundError("orderNumber", key)
	}
	r.orders[key] = aggregate.Clone()
	return nil
}

func (r *MemoryOrderRepository) Get(_ context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[number.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
	}
	return stored.Clone(), nil
}

func (r *MemoryOrderRepository) List(_ context.Context, userID *string) ([]*order.Order, error) {
	r.mu.RLock()
	result := make([]*order.Order, 0, len(r.orders))
	for _, stored := range r.orders {
		if userID != nil && !stored.BelongsTo(*userID) {
			continue
		}
		result = append(result, stored.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b *order.Order) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.Number().String(), b.Number().String())
	})
	return result, nil
}

func (r *MemoryOrderRepository) Delete(_ context.Context, number kernel.OrderNumber) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[number.String()]; !ok {
		return false, nil
	}
	delete(r.orders, number.String())
	return true, nil
}
