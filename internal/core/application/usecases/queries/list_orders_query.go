package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists orders oldest first, optionally filtered by a search text
// and restricted to one user. With a positive limit it returns the most recent
// orders instead, newest first.
//
// Example:
//
//	query := NewListOrdersQuery(&userID, "ord-ab", 0)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	userID *string
	search string
	limit  int

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(userID *string, search string, limit int) ListOrdersQuery {
	q := ListOrdersQuery{search: search, limit: limit, guard: guard.NewConstructorGuard()}
	if userID != nil && *userID != "" {
		v := *userID
		q.userID = &v
	}
	return q
}

// NewRecentOrdersQuery asks for the newest limit orders of userID.
func NewRecentOrdersQuery(userID *string, limit int) ListOrdersQuery {
	if limit <= 0 {
		limit = services.DefaultRecentLimit
	}
	return NewListOrdersQuery(userID, "", limit)
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) UserID() *string {
	return q.userID
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

type ListOrdersQueryHandler struct {
	orders  ports.OrderRepository
	history services.OrderHistory
}

func NewListOrdersQueryHandler(orders ports.OrderRepository, history services.OrderHistory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, history: history}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	orders = h.history.Search(orders, query.Search())
	if query.Limit() > 0 {
		orders = h.history.Recent(orders, query.Limit())
	}
	return orders, nil
}
