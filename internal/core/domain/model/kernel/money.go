package kernel

import (
	"encoding/json"
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PresentationPlaces is the number of decimal places money is rounded to for display.
const PresentationPlaces = 2

// Money is a non-negative amount. Arithmetic keeps full precision; rounding
// happens only in String and MarshalJSON.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MustMoney parses s and panics on failure. Intended for static data and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	m, err := NewMoney(d)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate multiplies by a non-negative rate, e.g. a tax rate.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Rounded returns the amount rounded half away from zero to PresentationPlaces.
func (m Money) Rounded() decimal.Decimal {
	return m.amount.Round(PresentationPlaces)
}

// String formats with exactly two decimals, e.g. "20.97".
func (m Money) String() string {
	return m.amount.StringFixed(PresentationPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
