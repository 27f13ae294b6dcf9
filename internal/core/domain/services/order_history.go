package services

import (
	"slices"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
)

const (
	// DefaultDateLayout renders dates as month/day/year without padding, e.g. "10/6/2026".
	DefaultDateLayout = "1/2/2006"
	// DefaultRecentLimit is the number of orders shown in a recent-orders view.
	DefaultRecentLimit = 5
)

// OrderHistory filters past orders the way a customer looks them up: by a fragment
// of the order number or of the date the order was placed.
//
// Dates are formatted with the viewer's layout in the viewer's location, so
// "10/16" matches an order created late on 16 October in New York even though
// it is already the 17th in UTC.
//
// Example usage:
//
//	history := services.NewOrderHistory(services.DefaultDateLayout, time.UTC)
//	matches := history.Search(orders, "ord-ab")
type OrderHistory struct {
	layout   string
	location *time.Location
}

// NewOrderHistory returns a history using layout and location for date matching.
// An empty layout falls back to DefaultDateLayout and a nil location to UTC.
func NewOrderHistory(layout string, location *time.Location) OrderHistory {
	if layout == "" {
		layout = DefaultDateLayout
	}
	if location == nil {
		location = time.UTC
	}
	return OrderHistory{layout: layout, location: location}
}

// Search returns the orders whose number or formatted creation date contains query,
// ignoring case. Input order is preserved. An empty query returns orders unchanged.
func (h OrderHistory) Search(orders []*order.Order, query string) []*order.Order {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return orders
	}

	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if h.matches(o, query) {
			result = append(result, o)
		}
	}
	return result
}

// Recent returns at most limit orders, newest first. A non-positive limit means
// DefaultRecentLimit.
func (h OrderHistory) Recent(orders []*order.Order, limit int) []*order.Order {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// FormatDate renders t the way Search matches it.
func (h OrderHistory) FormatDate(t time.Time) string {
	return t.In(h.location).Format(h.layout)
}

func (h OrderHistory) matches(o *order.Order, query string) bool {
	if strings.Contains(strings.ToLower(o.Number().String()), query) {
		return true
	}
	return strings.Contains(strings.ToLower(h.FormatDate(o.CreatedAt())), query)
}
