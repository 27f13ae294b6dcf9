package order

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the fixed 10% tax applied to the subtotal.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// Totals holds subtotal, tax and total at full precision.
type Totals struct {
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money
}

// CalculateTotals prices a cart: subtotal = Σ price × quantity, tax = subtotal × taxRate,
// total = subtotal + tax. It fails with InvalidCartError for an empty cart or for any
// item with quantity < 1 or a negative price. It has no side effects.
func CalculateTotals(items []kernel.LineItem, taxRate decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, errs.NewInvalidCartError("cart is empty")
	}
	if taxRate.IsNegative() {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"tax rate is invalid",
			fmt.Errorf("%s is negative", taxRate.String()),
		)
	}

	subtotal := kernel.ZeroMoney
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return Totals{}, errs.NewInvalidCartErrorWithCause(fmt.Sprintf("item %d is malformed", i), err)
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := subtotal.MulRate(taxRate)
	return Totals{
		subtotal: subtotal,
		tax:      tax,
		total:    subtotal.Add(tax),
	}, nil
}

// RestoreTotals rebuilds previously computed totals without recomputing them.
func RestoreTotals(subtotal, tax, total kernel.Money) Totals {
	return Totals{subtotal: subtotal, tax: tax, total: total}
}

func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

func (t Totals) Tax() kernel.Money {
	return t.tax
}

func (t Totals) Total() kernel.Money {
	return t.total
}
