package order

import (
	"errors"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that bypassed NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the customer-facing priced purchase. Items, totals, owner and creation
// time are fixed at construction; status is the only field that changes afterwards.
type Order struct {
	number    kernel.OrderNumber
	userID    *string
	items     []kernel.LineItem
	totals    Totals
	createdAt time.Time
	status    Status

	isConstructed bool
}

// NewOrder prices items with CalculateTotals and returns a Pending order.
// userID nil means a guest order. Fails with InvalidCartError when the cart
// cannot be priced.
//
// Example:
//
//	item, _ := kernel.NewLineItem(101, "Margherita", decimal.RequireFromString("8.99"), 2)
//	o, err := order.NewOrder(kernel.NewOrderNumber(now), []kernel.LineItem{item}, nil, now, order.DefaultTaxRate)
func NewOrder(
	number kernel.OrderNumber,
	items []kernel.LineItem,
	userID *string,
	createdAt time.Time,
	taxRate decimal.Decimal,
) (*Order, error) {
	totals, totalsErr := CalculateTotals(items, taxRate)

	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(number.Validate(), totalsErr, createdAtErr); err != nil {
		return nil, err
	}

	return &Order{
		number:        number,
		userID:        copyUserID(userID),
		items:         slices.Clone(items),
		totals:        totals,
		createdAt:     createdAt,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder rehydrates a persisted order. Totals are taken as stored and never recomputed.
func RestoreOrder(
	number kernel.OrderNumber,
	items []kernel.LineItem,
	userID *string,
	totals Totals,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	if len(items) == 0 {
		return nil, errs.NewInvalidCartError("cart is empty")
	}
	if err := errors.Join(number.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		number:        number,
		userID:        copyUserID(userID),
		items:         slices.Clone(items),
		totals:        totals,
		createdAt:     createdAt,
		status:        status,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID is the order number; orders have no separate surrogate key.
func (o *Order) ID() kernel.OrderNumber {
	return o.number
}

func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// UserID returns a copy of the owner id, or nil for a guest order.
func (o *Order) UserID() *string {
	return copyUserID(o.userID)
}

// IsGuest reports whether the order was placed without a user.
func (o *Order) IsGuest() bool {
	return o.userID == nil
}

// BelongsTo reports whether userID placed the order.
func (o *Order) BelongsTo(userID string) bool {
	return o.userID != nil && *o.userID == userID
}

// Items returns a copy of the line items.
func (o *Order) Items() []kernel.LineItem {
	return slices.Clone(o.items)
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// SetStatus overwrites the status without transition checks. Only the value
// itself is validated.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// AdvanceTo moves the status forward when next is strictly later than the
// current one and reports whether it changed anything.
func (o *Order) AdvanceTo(next Status) (bool, error) {
	if err := next.Validate(); err != nil {
		return false, err
	}
	if !o.status.Advances(next) {
		return false, nil
	}
	o.status = next
	return true, nil
}

// Clone returns an independent copy, so stored orders are never shared with callers.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.userID = copyUserID(o.userID)
	c.items = slices.Clone(o.items)
	return &c
}

func copyUserID(userID *string) *string {
	if userID == nil {
		return nil
	}
	v := *userID
	return &v
}
