package kitchen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

const (
	// DefaultPrepTimeMinutes is the preparation estimate of a freshly dispatched ticket.
	DefaultPrepTimeMinutes = 30
	// MaxPrepTimeMinutes caps a single estimate at one day.
	MaxPrepTimeMinutes = 24 * 60
)

var (
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")
)

// Ticket is the kitchen's record of an order. It shares the order number with the
// order it was dispatched from.
//
// Business rules:
//   - a ticket has at least one line item
//   - estimatedReadyAt is always the time of the last estimate plus prepTimeMinutes
//   - startedAt and readyAt are recorded once and never overwritten
//   - assignedTo is never blank
type Ticket struct {
	number    kernel.OrderNumber
	items     []kernel.LineItem
	createdAt time.Time
	userID    *string
	status    Status

	assignedTo       *string
	prepTimeMinutes  int
	estimatedReadyAt time.Time
	sentToKitchenAt  time.Time
	startedAt        *time.Time
	readyAt          *time.Time
	assignedAt       *time.Time

	isConstructed bool
}

// NewTicket dispatches items to the kitchen at now. The ticket starts Pending with
// the given preparation estimate. A zero createdAt defaults to now.
//
// Example:
//
//	t, err := kitchen.NewTicket(o.Number(), o.Items(), o.CreatedAt(), o.UserID(), kitchen.DefaultPrepTimeMinutes, clock.Now())
func NewTicket(
	number kernel.OrderNumber,
	items []kernel.LineItem,
	createdAt time.Time,
	userID *string,
	prepTimeMinutes int,
	now time.Time,
) (*Ticket, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewInvalidTicketError("ticket has no items")
	} else {
		for i, item := range items {
			if err := item.Validate(); err != nil {
				itemsErr = errs.NewInvalidTicketErrorWithCause(fmt.Sprintf("item %d is malformed", i), err)
				break
			}
		}
	}

	if err := errors.Join(number.Validate(), itemsErr, validatePrepTime(prepTimeMinutes)); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		createdAt = now
	}

	return &Ticket{
		number:           number,
		items:            slices.Clone(items),
		createdAt:        createdAt,
		userID:           copyPtr(userID),
		status:           Pending,
		prepTimeMinutes:  prepTimeMinutes,
		estimatedReadyAt: now.Add(minutes(prepTimeMinutes)),
		sentToKitchenAt:  now,
		isConstructed:    true,
	}, nil
}

// TicketSnapshot carries every persisted field of a ticket for RestoreTicket.
type TicketSnapshot struct {
	Number           kernel.OrderNumber
	Items            []kernel.LineItem
	CreatedAt        time.Time
	UserID           *string
	Status           Status
	AssignedTo       *string
	PrepTimeMinutes  int
	EstimatedReadyAt time.Time
	SentToKitchenAt  time.Time
	StartedAt        *time.Time
	ReadyAt          *time.Time
	AssignedAt       *time.Time
}

// RestoreTicket rehydrates a persisted ticket.
func RestoreTicket(s TicketSnapshot) (*Ticket, error) {
	var itemsErr error
	if len(s.Items) == 0 {
		itemsErr = errs.NewInvalidTicketError("ticket has no items")
	}
	if err := errors.Join(s.Number.Validate(), itemsErr, s.Status.Validate()); err != nil {
		return nil, err
	}

	return &Ticket{
		number:           s.Number,
		items:            slices.Clone(s.Items),
		createdAt:        s.CreatedAt,
		userID:           copyPtr(s.UserID),
		status:           s.Status,
		assignedTo:       copyPtr(s.AssignedTo),
		prepTimeMinutes:  s.PrepTimeMinutes,
		estimatedReadyAt: s.EstimatedReadyAt,
		sentToKitchenAt:  s.SentToKitchenAt,
		startedAt:        copyPtr(s.StartedAt),
		readyAt:          copyPtr(s.ReadyAt),
		assignedAt:       copyPtr(s.AssignedAt),
		isConstructed:    true,
	}, nil
}

// Snapshot exports every field, e.g. for persistence.
func (t *Ticket) Snapshot() TicketSnapshot {
	return TicketSnapshot{
		Number:           t.number,
		Items:            slices.Clone(t.items),
		CreatedAt:        t.createdAt,
		UserID:           copyPtr(t.userID),
		Status:           t.status,
		AssignedTo:       copyPtr(t.assignedTo),
		PrepTimeMinutes:  t.prepTimeMinutes,
		EstimatedReadyAt: t.estimatedReadyAt,
		SentToKitchenAt:  t.sentToKitchenAt,
		StartedAt:        copyPtr(t.startedAt),
		ReadyAt:          copyPtr(t.readyAt),
		AssignedAt:       copyPtr(t.assignedAt),
	}
}

func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

func (t *Ticket) ID() kernel.OrderNumber          { return t.number }
func (t *Ticket) OrderNumber() kernel.OrderNumber { return t.number }
func (t *Ticket) Items() []kernel.LineItem        { return slices.Clone(t.items) }
func (t *Ticket) CreatedAt() time.Time            { return t.createdAt }
func (t *Ticket) UserID() *string                 { return copyPtr(t.userID) }
func (t *Ticket) Status() Status                  { return t.status }
func (t *Ticket) AssignedTo() *string             { return copyPtr(t.assignedTo) }
func (t *Ticket) PrepTimeMinutes() int            { return t.prepTimeMinutes }
func (t *Ticket) EstimatedReadyAt() time.Time     { return t.estimatedReadyAt }
func (t *Ticket) SentToKitchenAt() time.Time      { return t.sentToKitchenAt }
func (t *Ticket) StartedAt() *time.Time           { return copyPtr(t.startedAt) }
func (t *Ticket) ReadyAt() *time.Time             { return copyPtr(t.readyAt) }
func (t *Ticket) AssignedAt() *time.Time          { return copyPtr(t.assignedAt) }

// UpdateStatus moves the ticket to status at now. Any status of the enum is accepted,
// including going back. When prepTimeMinutes is given the estimate is recomputed from now.
// startedAt is recorded on the first move into Preparing and readyAt on the first move
// into Ready; later moves keep the original timestamps.
func (t *Ticket) UpdateStatus(status Status, prepTimeMinutes *int, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if prepTimeMinutes != nil {
		if err := validatePrepTime(*prepTimeMinutes); err != nil {
			return err
		}
	}

	t.status = status
	if prepTimeMinutes != nil {
		t.prepTimeMinutes = *prepTimeMinutes
		t.estimatedReadyAt = now.Add(minutes(*prepTimeMinutes))
	}
	if status == Preparing && t.startedAt == nil {
		t.startedAt = &now
	}
	if status == Ready && t.readyAt == nil {
		t.readyAt = &now
	}
	return nil
}

// Assign hands the ticket to a member of staff. Reassignment replaces both the
// name and assignedAt.
func (t *Ticket) Assign(staffName string, now time.Time) error {
	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return errs.NewInvalidAssignmentError("staff name is blank")
	}
	t.assignedTo = &staffName
	t.assignedAt = &now
	return nil
}

// Clone returns an independent copy.
func (t *Ticket) Clone() *Ticket {
	if t == nil {
		return nil
	}
	c := *t
	c.items = slices.Clone(t.items)
	c.userID = copyPtr(t.userID)
	c.assignedTo = copyPtr(t.assignedTo)
	c.startedAt = copyPtr(t.startedAt)
	c.readyAt = copyPtr(t.readyAt)
	c.assignedAt = copyPtr(t.assignedAt)
	return &c
}

func validatePrepTime(prepTimeMinutes int) error {
	if prepTimeMinutes < 1 || prepTimeMinutes > MaxPrepTimeMinutes {
		return errs.NewValueIsOutOfRangeError("prepTime", prepTimeMinutes, 1, MaxPrepTimeMinutes)
	}
	return nil
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
