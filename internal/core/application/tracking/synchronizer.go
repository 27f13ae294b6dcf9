// Package tracking bridges order placement to the kitchen and lets clients follow
// an order by polling.
//
// Polling is stateless on the server: every poll is an idempotent read, so a
// missed or duplicated tick is harmless. Subscription wraps the poll loop for
// in-process callers and can be cancelled at any time.
package tracking

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	// DefaultTrackerInterval is the advisory poll cadence for one order's tracker.
	DefaultTrackerInterval = 5 * time.Second
	// DefaultBoardInterval is the advisory refresh cadence of the kitchen board.
	DefaultBoardInterval = 10 * time.Second
)

// Snapshot is what a tracking client sees on one poll. Ticket is nil while the
// order has not reached the kitchen.
type Snapshot struct {
	Order  *order.Order
	Ticket *kitchen.Ticket
}

// Intervals holds the advisory poll cadences handed to clients.
type Intervals struct {
	Tracker time.Duration
	Board   time.Duration
}

func DefaultIntervals() Intervals {
	return Intervals{Tracker: DefaultTrackerInterval, Board: DefaultBoardInterval}
}

// Synchronizer keeps the customer-facing order in step with its kitchen ticket.
type Synchronizer struct {
	place     commands.PlaceOrderCommandHandler
	reconcile commands.ReconcileOrderCommandHandler
	getTicket queries.GetTicketQueryHandler
	clock     clockwork.Clock
	logger    *zap.Logger
	intervals Intervals
}

func NewSynchronizer(
	place commands.PlaceOrderCommandHandler,
	reconcile commands.ReconcileOrderCommandHandler,
	getTicket queries.GetTicketQueryHandler,
	clock clockwork.Clock,
	logger *zap.Logger,
	intervals Intervals,
) *Synchronizer {
	if intervals.Tracker <= 0 {
		intervals.Tracker = DefaultTrackerInterval
	}
	if intervals.Board <= 0 {
		intervals.Board = DefaultBoardInterval
	}
	return &Synchronizer{
		place:     place,
		reconcile: reconcile,
		getTicket: getTicket,
		clock:     clock,
		logger:    logger,
		intervals: intervals,
	}
}

func (s *Synchronizer) Intervals() Intervals {
	return s.intervals
}

// PlaceOrder creates the order and dispatches its ticket. The order is returned
// even when the dispatch had to be queued for a retry.
func (s *Synchronizer) PlaceOrder(ctx context.Context, items []kernel.LineItem, userID *string) (*order.Order, error) {
	cmd, err := commands.NewPlaceOrderCommand(items, userID)
	if err != nil {
		return nil, err
	}
	return s.place.Handle(ctx, cmd)
}

// PollStatus reads the ticket of an order.
func (s *Synchronizer) PollStatus(ctx context.Context, number kernel.OrderNumber) (*kitchen.Ticket, error) {
	query, err := queries.NewGetTicketQuery(number)
	if err != nil {
		return nil, err
	}
	return s.getTicket.Handle(ctx, query)
}

// Reconcile moves the order forward to its ticket's status, never backward.
func (s *Synchronizer) Reconcile(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	cmd, err := commands.NewReconcileOrderCommand(number)
	if err != nil {
		return nil, err
	}
	return s.reconcile.Handle(ctx, cmd)
}

// Track reconciles the order and returns it together with its ticket.
func (s *Synchronizer) Track(ctx context.Context, number kernel.OrderNumber) (Snapshot, error) {
	o, err := s.Reconcile(ctx, number)
	if err != nil {
		return Snapshot{}, err
	}

	ticket, err := s.PollStatus(ctx, number)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return Snapshot{}, err
	}
	return Snapshot{Order: o, Ticket: ticket}, nil
}

// Subscribe tracks number right away and then every interval until the returned
// subscription is cancelled or ctx is done. A non-positive interval means the
// tracker default. onPoll runs on the subscription's goroutine and may call
// Cancel on the returned subscription, but not Stop.
func (s *Synchronizer) Subscribe(
	ctx context.Context,
	number kernel.OrderNumber,
	interval time.Duration,
	onPoll func(Snapshot, error),
) *Subscription {
	if interval <= 0 {
		interval = s.intervals.Tracker
	}

	sub := newSubscription(ctx)
	ticker := s.clock.NewTicker(interval)

	go func() {
		defer close(sub.done)
		defer ticker.Stop()

		log := s.logger.With(zap.String("orderNumber", number.String()))
		poll := func() {
			snapshot, err := s.Track(sub.ctx, number)
			if err != nil && sub.ctx.Err() == nil {
				log.Debug("tracking poll failed", zap.Error(err))
			}
			onPoll(snapshot, err)
		}

		poll()
		for {
			select {
			case <-sub.ctx.Done():
				return
			case <-ticker.Chan():
				poll()
			}
		}
	}()

	return sub
}
