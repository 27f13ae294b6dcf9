package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is one priced product line of a cart, order or kitchen ticket.
// It is immutable once constructed.
type LineItem struct {
	productID int
	name      string
	unitPrice Money
	quantity  int
}

// NewLineItem validates that name is present, unitPrice is not negative and
// quantity is at least one.
func NewLineItem(productID int, name string, unitPrice decimal.Decimal, quantity int) (LineItem, error) {
	item := LineItem{productID: productID}

	price, priceErr := NewMoney(unitPrice)

	var nameErr, quantityErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if err := errors.Join(nameErr, priceErr, quantityErr); err != nil {
		return LineItem{}, err
	}

	item.name = strings.TrimSpace(name)
	item.unitPrice = price
	item.quantity = quantity
	return item, nil
}

func (i LineItem) ProductID() int {
	return i.productID
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) UnitPrice() Money {
	return i.unitPrice
}

func (i LineItem) Quantity() int {
	return i.quantity
}

// LineTotal is unitPrice × quantity at full precision.
func (i LineItem) LineTotal() Money {
	return i.unitPrice.Times(i.quantity)
}

// Validate rejects line items that did not come from NewLineItem.
func (i LineItem) Validate() error {
	if i.quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", i.quantity),
		)
	}
	if i.unitPrice.Decimal().IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice is invalid")
	}
	return nil
}
