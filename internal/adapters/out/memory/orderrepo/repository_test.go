package orderrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, number string, userID *string, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := kernel.NewLineItem(101, "Classic Burger", decimal.RequireFromString("8.99"), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.MustOrderNumber(number), []kernel.LineItem{item}, userID, createdAt, order.DefaultTaxRate)
	require.NoError(t, err)
	return o
}

func TestMemoryOrderRepository_AddGet(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewMemoryOrderRepository()
	o := newOrder(t, "ORD-1", nil, base)

	require.NoError(t, repo.Add(ctx, o))

	stored, err := repo.Get(ctx, o.Number())
	require.NoError(t, err)
	assert.Equal(t, o.Number(), stored.Number())
	assert.Equal(t, "19.78", stored.Totals().Total().String())

	t.Run("should reject duplicate order number", func(t *testing.T) {
		err := repo.Add(ctx, newOrder(t, "ORD-1", nil, base))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})

	t.Run("should not leak stored aggregate", func(t *testing.T) {
		require.NoError(t, stored.SetStatus(order.Completed))

		again, err := repo.Get(ctx, o.Number())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, again.Status())
	})

	t.Run("should report missing order", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.MustOrderNumber("ORD-404"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject blank number", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.OrderNumber{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		err := repo.Add(ctx, &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestMemoryOrderRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewMemoryOrderRepository()
	o := newOrder(t, "ORD-1", nil, base)
	require.NoError(t, repo.Add(ctx, o))

	require.NoError(t, o.SetStatus(order.Ready))
	require.NoError(t, repo.Update(ctx, o))

	stored, err := repo.Get(ctx, o.Number())
	require.NoError(t, err)
	assert.Equal(t, order.Ready, stored.Status())

	err = repo.Update(ctx, newOrder(t, "ORD-404", nil, base))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryOrderRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewMemoryOrderRepository()
	alice, bob := "alice", "bob"

	require.NoError(t, repo.Add(ctx, newOrder(t, "ORD-3", &alice, base.Add(2*time.Minute))))
	require.NoError(t, repo.Add(ctx, newOrder(t, "ORD-1", &alice, base)))
	require.NoError(t, repo.Add(ctx, newOrder(t, "ORD-2", &bob, base.Add(time.Minute))))
	require.NoError(t, repo.Add(ctx, newOrder(t, "ORD-4", nil, base.Add(3*time.Minute))))

	t.Run("should list everything by creation time", func(t *testing.T) {
		all, err := repo.List(ctx, nil)

		require.NoError(t, err)
		require.Len(t, all, 4)
		for i, want := range []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4"} {
			assert.Equal(t, want, all[i].Number().String())
		}
	})

	t.Run("should filter by user", func(t *testing.T) {
		mine, err := repo.List(ctx, &alice)

		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, "ORD-1", mine[0].Number().String())
		assert.Equal(t, "ORD-3", mine[1].Number().String())
	})

	t.Run("should return empty list for unknown user", func(t *testing.T) {
		nobody := "nobody"

		none, err := repo.List(ctx, &nobody)

		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestMemoryOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewMemoryOrderRepository()
	o := newOrder(t, "ORD-1", nil, base)
	require.NoError(t, repo.Add(ctx, o))

	deleted, err := repo.Delete(ctx, o.Number())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, o.Number())
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Get(ctx, o.Number())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryOrderRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewMemoryOrderRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := newOrder(t, fmt.Sprintf("ORD-%d", i), nil, base.Add(time.Duration(i)*time.Second))
			assert.NoError(t, repo.Add(ctx, o))
			_, err := repo.List(ctx, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
