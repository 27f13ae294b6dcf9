package ticketrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory/ticketrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newTicket(t *testing.T, number string, now time.Time) *kitchen.Ticket {
	t.Helper()
	item, err := kernel.NewLineItem(101, "Classic Burger", decimal.RequireFromString("8.99"), 1)
	require.NoError(t, err)
	ticket, err := kitchen.NewTicket(kernel.MustOrderNumber(number), []kernel.LineItem{item}, now, nil, kitchen.DefaultPrepTimeMinutes, now)
	require.NoError(t, err)
	return ticket
}

func TestMemoryTicketRepository(t *testing.T) {
	ctx := context.Background()
	repo := ticketrepo.NewMemoryTicketRepository()
	ticket := newTicket(t, "ORD-1", base)

	require.NoError(t, repo.Add(ctx, ticket))

	t.Run("should keep one ticket per order", func(t *testing.T) {
		err := repo.Add(ctx, newTicket(t, "ORD-1", base.Add(time.Minute)))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("should persist updates", func(t *testing.T) {
		require.NoError(t, ticket.Assign("Sam", base.Add(time.Minute)))
		require.NoError(t, repo.Update(ctx, ticket))

		stored, err := repo.Get(ctx, ticket.OrderNumber())
		require.NoError(t, err)
		assert.Equal(t, "Sam", *stored.AssignedTo())
	})

	t.Run("should not leak stored ticket", func(t *testing.T) {
		stored, err := repo.Get(ctx, ticket.OrderNumber())
		require.NoError(t, err)
		require.NoError(t, stored.UpdateStatus(kitchen.Ready, nil, base))

		again, err := repo.Get(ctx, ticket.OrderNumber())
		require.NoError(t, err)
		assert.Equal(t, kitchen.Pending, again.Status())
	})

	t.Run("should report missing ticket", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.MustOrderNumber("ORD-404"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		err = repo.Update(ctx, newTicket(t, "ORD-404", base))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, ticket.OrderNumber())
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, ticket.OrderNumber())
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMemoryTicketRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := ticketrepo.NewMemoryTicketRepository()

	require.NoError(t, repo.Add(ctx, newTicket(t, "ORD-B", base.Add(time.Minute))))
	require.NoError(t, repo.Add(ctx, newTicket(t, "ORD-A", base)))

	tickets, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "ORD-A", tickets[0].OrderNumber().String())
	assert.Equal(t, "ORD-B", tickets[1].OrderNumber().String())
}

func TestMemoryTicketRepository_ConcurrentReadsDuringWrites(t *testing.T) {
	ctx := context.Background()
	repo := ticketrepo.NewMemoryTicketRepository()
	ticket := newTicket(t, "ORD-1", base)
	require.NoError(t, repo.Add(ctx, ticket))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := ticket.Clone()
			prepTime := i + 1
			assert.NoError(t, c.UpdateStatus(kitchen.Preparing, &prepTime, base))
			assert.NoError(t, repo.Update(ctx, c))
		}()
		go func() {
			defer wg.Done()
			stored, err := repo.Get(ctx, ticket.OrderNumber())
			assert.NoError(t, err)
			assert.Equal(t, stored.SentToKitchenAt().Add(time.Duration(stored.PrepTimeMinutes())*time.Minute), stored.EstimatedReadyAt())
		}()
	}
	wg.Wait()
}
