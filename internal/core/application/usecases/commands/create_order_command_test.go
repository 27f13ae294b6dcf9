package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, nil)

		require.ErrorIs(t, err, errs.ErrInvalidCart)
	})

	t.Run("should treat blank user as guest", func(t *testing.T) {
		blank := ""

		cmd, err := commands.NewCreateOrderCommand(testItems(t), &blank)

		require.NoError(t, err)
		assert.Nil(t, cmd.UserID())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should store a priced pending order", func(t *testing.T) {
		ctx := t.Context()
		userID := "user-1"
		cmd, _ := commands.NewCreateOrderCommand(testItems(t), &userID)

		repo := new(MockOrderRepository)
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		handler := commands.NewCreateOrderCommandHandler(repo, clockwork.NewFakeClockAt(now), fixedNumbers("ORD-1"), order.DefaultTaxRate)

		o, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "ORD-1", o.Number().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, "23.07", o.Totals().Total().String())
		assert.True(t, o.BelongsTo("user-1"))
		repo.AssertExpectations(t)
	})

	t.Run("should retry on order number collision", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateOrderCommand(testItems(t), nil)

		repo := new(MockOrderRepository)
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool { return o.Number().String() == "ORD-TAKEN" })).
			Return(errs.NewObjectAlreadyExistsError("orderNumber", "ORD-TAKEN")).Once()
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool { return o.Number().String() == "ORD-FREE" })).
			Return(nil).Once()
		handler := commands.NewCreateOrderCommandHandler(repo, clockwork.NewFakeClockAt(now), fixedNumbers("ORD-TAKEN", "ORD-FREE"), order.DefaultTaxRate)

		o, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "ORD-FREE", o.Number().String())
		repo.AssertExpectations(t)
	})

	t.Run("should give up after bounded attempts", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateOrderCommand(testItems(t), nil)

		repo := new(MockOrderRepository)
		repo.On("Add", ctx, mock.Anything).
			Return(errs.NewObjectAlreadyExistsError("orderNumber", "ORD-TAKEN")).
			Times(commands.MaxOrderNumberAttempts)
		handler := commands.NewCreateOrderCommandHandler(repo, clockwork.NewFakeClockAt(now), fixedNumbers("ORD-TAKEN"), order.DefaultTaxRate)

		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStorage)
		repo.AssertExpectations(t)
	})

	t.Run("should propagate storage failure without retry", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateOrderCommand(testItems(t), nil)
		boom := errs.NewStorageError("add order", errors.New("connection reset"))

		repo := new(MockOrderRepository)
		repo.On("Add", ctx, mock.Anything).Return(boom).Once()
		handler := commands.NewCreateOrderCommandHandler(repo, clockwork.NewFakeClockAt(now), nil, order.DefaultTaxRate)

		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStorage)
		repo.AssertExpectations(t)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		handler := commands.NewCreateOrderCommandHandler(new(MockOrderRepository), clockwork.NewFakeClock(), kernel.NewOrderNumber, order.DefaultTaxRate)

		_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
