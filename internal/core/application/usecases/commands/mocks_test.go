package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, userID *string) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockTicketRepository struct{ mock.Mock }

func (m *MockTicketRepository) Add(ctx context.Context, t *kitchen.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, t *kitchen.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTicketRepository) Get(ctx context.Context, number kernel.OrderNumber) (*kitchen.Ticket, error) {
	args := m.Called(ctx, number)
	t, _ := args.Get(0).(*kitchen.Ticket)
	return t, args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context) ([]*kitchen.Ticket, error) {
	args := m.Called(ctx)
	tickets, _ := args.Get(0).([]*kitchen.Ticket)
	return tickets, args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockDispatchQueue struct{ mock.Mock }

func (m *MockDispatchQueue) Push(ctx context.Context, number kernel.OrderNumber, reason string, failedAt time.Time) error {
	return m.Called(ctx, number, reason, failedAt).Error(0)
}

func (m *MockDispatchQueue) Pending(ctx context.Context) ([]ports.DispatchFailure, error) {
	args := m.Called(ctx)
	failures, _ := args.Get(0).([]ports.DispatchFailure)
	return failures, args.Error(1)
}

func (m *MockDispatchQueue) Remove(ctx context.Context, number kernel.OrderNumber) error {
	return m.Called(ctx, number).Error(0)
}

// MockKeyLocker records which keys were locked and whether they were released.
type MockKeyLocker struct {
	locked   []string
	released int
}

func (m *MockKeyLocker) Lock(key string) func() {
	m.locked = append(m.locked, key)
	return func() { m.released++ }
}

func testItems(t *testing.T) []kernel.LineItem {
	t.Helper()
	burger, err := kernel.NewLineItem(101, "Classic Burger", decimal.RequireFromString("8.99"), 2)
	require.NoError(t, err)
	fries, err := kernel.NewLineItem(201, "Fries", decimal.RequireFromString("2.99"), 1)
	require.NoError(t, err)
	return []kernel.LineItem{burger, fries}
}

func testOrder(t *testing.T, number string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.MustOrderNumber(number), testItems(t), nil, now, order.DefaultTaxRate)
	require.NoError(t, err)
	require.NoError(t, o.SetStatus(status))
	return o
}

func testTicket(t *testing.T, number string, status kitchen.Status) *kitchen.Ticket {
	t.Helper()
	ticket, err := kitchen.NewTicket(kernel.MustOrderNumber(number), testItems(t), now, nil, kitchen.DefaultPrepTimeMinutes, now)
	require.NoError(t, err)
	require.NoError(t, ticket.UpdateStatus(status, nil, now))
	return ticket
}

func fixedNumbers(numbers ...string) kernel.OrderNumberGenerator {
	i := 0
	return func(time.Time) kernel.OrderNumber {
		n := numbers[i%len(numbers)]
		i++
		return kernel.MustOrderNumber(n)
	}
}
