package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, number string, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := kernel.NewLineItem(101, "Classic Burger", decimal.RequireFromString("8.99"), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.MustOrderNumber(number), []kernel.LineItem{item}, nil, createdAt, order.DefaultTaxRate)
	require.NoError(t, err)
	return o
}

func numbers(orders []*order.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Number().String())
	}
	return result
}

func TestOrderHistory_Search(t *testing.T) {
	orders := []*order.Order{
		newOrder(t, "ORD-AB12-XYZ01", time.Date(2026, 10, 6, 9, 0, 0, 0, time.UTC)),
		newOrder(t, "ORD-CD34-XYZ02", time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)),
		newOrder(t, "ORD-ab56-XYZ03", time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)),
	}
	history := services.NewOrderHistory(services.DefaultDateLayout, time.UTC)

	t.Run("should match order number case insensitively", func(t *testing.T) {
		result := history.Search(orders, "ORD-AB")

		assert.Equal(t, []string{"ORD-AB12-XYZ01", "ORD-ab56-XYZ03"}, numbers(result))
	})

	t.Run("should match lower case query", func(t *testing.T) {
		result := history.Search(orders, "cd34")

		assert.Equal(t, []string{"ORD-CD34-XYZ02"}, numbers(result))
	})

	t.Run("should match formatted date", func(t *testing.T) {
		result := history.Search(orders, "10/16/2026")

		assert.Equal(t, []string{"ORD-CD34-XYZ02"}, numbers(result))
	})

	t.Run("should match partial date", func(t *testing.T) {
		result := history.Search(orders, "10/")

		assert.Equal(t, []string{"ORD-AB12-XYZ01", "ORD-CD34-XYZ02"}, numbers(result))
	})

	t.Run("should return everything for empty query", func(t *testing.T) {
		assert.Len(t, history.Search(orders, ""), 3)
		assert.Len(t, history.Search(orders, "   "), 3)
	})

	t.Run("should return empty result when nothing matches", func(t *testing.T) {
		assert.Empty(t, history.Search(orders, "ORD-ZZ"))
	})

	t.Run("should format dates in the viewer location", func(t *testing.T) {
		newYork := time.FixedZone("EDT", -4*60*60)
		local := services.NewOrderHistory(services.DefaultDateLayout, newYork)
		late := []*order.Order{newOrder(t, "ORD-LATE", time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC))}

		assert.Len(t, local.Search(late, "10/16/2026"), 1)
		assert.Empty(t, history.Search(late, "10/16/2026"))
	})
}

func TestOrderHistory_Recent(t *testing.T) {
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	var orders []*order.Order
	for i, n := range []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4", "ORD-5", "ORD-6", "ORD-7"} {
		orders = append(orders, newOrder(t, n, base.Add(time.Duration(i)*time.Minute)))
	}
	history := services.NewOrderHistory("", nil)

	t.Run("should return newest first with default limit", func(t *testing.T) {
		result := history.Recent(orders, 0)

		assert.Equal(t, []string{"ORD-7", "ORD-6", "ORD-5", "ORD-4", "ORD-3"}, numbers(result))
	})

	t.Run("should honour limit", func(t *testing.T) {
		assert.Equal(t, []string{"ORD-7", "ORD-6"}, numbers(history.Recent(orders, 2)))
	})

	t.Run("should not reorder input", func(t *testing.T) {
		_ = history.Recent(orders, 3)

		assert.Equal(t, "ORD-1", orders[0].Number().String())
	})
}
