package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID int, price string, quantity int) kernel.LineItem {
	t.Helper()
	item, err := kernel.NewLineItem(productID, "item", decimal.RequireFromString(price), quantity)
	require.NoError(t, err)
	return item
}

func TestCalculateTotals(t *testing.T) {
	t.Run("should price the reference cart", func(t *testing.T) {
		items := []kernel.LineItem{
			mustItem(t, 101, "8.99", 2),
			mustItem(t, 201, "2.99", 1),
		}

		totals, err := order.CalculateTotals(items, order.DefaultTaxRate)

		require.NoError(t, err)
		assert.Equal(t, "20.97", totals.Subtotal().String())
		assert.Equal(t, "2.10", totals.Tax().String())
		assert.Equal(t, "23.07", totals.Total().String())
	})

	t.Run("should keep tax at full precision", func(t *testing.T) {
		items := []kernel.LineItem{mustItem(t, 101, "8.99", 2), mustItem(t, 201, "2.99", 1)}

		totals, err := order.CalculateTotals(items, order.DefaultTaxRate)

		require.NoError(t, err)
		assert.True(t, totals.Tax().Decimal().Equal(decimal.RequireFromString("2.097")))
		assert.True(t, totals.Total().Decimal().Equal(decimal.RequireFromString("23.067")))
	})

	t.Run("total equals subtotal plus ten percent for many carts", func(t *testing.T) {
		prices := []string{"0.01", "0.99", "1.05", "3.49", "9.99", "10.99", "123.45"}
		for _, p := range prices {
			for qty := 1; qty <= 7; qty++ {
				items := []kernel.LineItem{mustItem(t, 1, p, qty), mustItem(t, 2, "2.49", 1)}

				totals, err := order.CalculateTotals(items, order.DefaultTaxRate)
				require.NoError(t, err)

				subtotal := totals.Subtotal().Decimal()
				expected := subtotal.Add(subtotal.Mul(decimal.RequireFromString("0.10"))).Round(2)
				assert.True(t, expected.Equal(totals.Total().Rounded()), "price %s qty %d", p, qty)
			}
		}
	})

	t.Run("should fail on empty cart", func(t *testing.T) {
		_, err := order.CalculateTotals(nil, order.DefaultTaxRate)

		require.ErrorIs(t, err, errs.ErrInvalidCart)
		assert.Contains(t, err.Error(), "cart is empty")
	})

	t.Run("should fail on malformed item", func(t *testing.T) {
		items := []kernel.LineItem{mustItem(t, 101, "8.99", 1), {}}

		_, err := order.CalculateTotals(items, order.DefaultTaxRate)

		require.ErrorIs(t, err, errs.ErrInvalidCart)
		assert.Contains(t, err.Error(), "item 1 is malformed")
	})

	t.Run("should fail on negative tax rate", func(t *testing.T) {
		_, err := order.CalculateTotals([]kernel.LineItem{mustItem(t, 1, "1", 1)}, decimal.RequireFromString("-0.1"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		items := []kernel.LineItem{mustItem(t, 101, "10.99", 3)}

		first, err := order.CalculateTotals(items, order.DefaultTaxRate)
		require.NoError(t, err)
		second, err := order.CalculateTotals(items, order.DefaultTaxRate)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
