package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/memory/orderrepo"
	"ordering/internal/adapters/out/memory/ticketrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var base = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

type QueriesTestSuite struct {
	suite.Suite
	orders  *orderrepo.MemoryOrderRepository
	tickets *ticketrepo.MemoryTicketRepository
	alice   string
}

func (suite *QueriesTestSuite) SetupTest() {
	ctx := context.Background()
	suite.orders = orderrepo.NewMemoryOrderRepository()
	suite.tickets = ticketrepo.NewMemoryTicketRepository()
	suite.alice = "alice"

	for i, n := range []string{"ORD-AB1", "ORD-CD2", "ORD-AB3", "ORD-EF4", "ORD-AB5", "ORD-GH6", "ORD-AB7"} {
		var userID *string
		if i%2 == 0 {
			userID = &suite.alice
		}
		createdAt := base.Add(time.Duration(i) * 24 * time.Hour)
		o, err := order.NewOrder(kernel.MustOrderNumber(n), suite.items(), userID, createdAt, order.DefaultTaxRate)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orders.Add(ctx, o))

		ticket, err := kitchen.NewTicket(o.Number(), o.Items(), createdAt, userID, 30, createdAt)
		suite.Require().NoError(err)
		if i < 3 {
			suite.Require().NoError(ticket.UpdateStatus(kitchen.Preparing, nil, createdAt))
		}
		suite.Require().NoError(suite.tickets.Add(ctx, ticket))
	}
}

func (suite *QueriesTestSuite) items() []kernel.LineItem {
	item, err := kernel.NewLineItem(101, "Classic Burger", decimal.RequireFromString("8.99"), 1)
	suite.Require().NoError(err)
	return []kernel.LineItem{item}
}

func (suite *QueriesTestSuite) handler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(suite.orders, services.NewOrderHistory(services.DefaultDateLayout, time.UTC))
}

func (suite *QueriesTestSuite) TestGetOrder() {
	handler := queries.NewGetOrderQueryHandler(suite.orders)

	query, err := queries.NewGetOrderQuery(kernel.MustOrderNumber("ORD-CD2"))
	suite.Require().NoError(err)
	o, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("ORD-CD2", o.Number().String())

	query, _ = queries.NewGetOrderQuery(kernel.MustOrderNumber("ORD-404"))
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestListOrders_All() {
	orders, err := suite.handler().Handle(context.Background(), queries.NewListOrdersQuery(nil, "", 0))

	suite.Require().NoError(err)
	suite.Len(orders, 7)
	suite.Equal("ORD-AB1", orders[0].Number().String())
}

func (suite *QueriesTestSuite) TestListOrders_ForUser() {
	orders, err := suite.handler().Handle(context.Background(), queries.NewListOrdersQuery(&suite.alice, "", 0))

	suite.Require().NoError(err)
	suite.Len(orders, 4)
	for _, o := range orders {
		suite.True(o.BelongsTo("alice"))
	}
}

func (suite *QueriesTestSuite) TestSearchOrders_ByNumber() {
	orders, err := suite.handler().Handle(context.Background(), queries.NewListOrdersQuery(nil, "ord-ab", 0))

	suite.Require().NoError(err)
	suite.Len(orders, 4)
}

func (suite *QueriesTestSuite) TestSearchOrders_ByDate() {
	orders, err := suite.handler().Handle(context.Background(), queries.NewListOrdersQuery(nil, "10/17/2026", 0))

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal("ORD-CD2", orders[0].Number().String())
}

func (suite *QueriesTestSuite) TestRecentOrders() {
	orders, err := suite.handler().Handle(context.Background(), queries.NewRecentOrdersQuery(nil, 0))

	suite.Require().NoError(err)
	suite.Require().Len(orders, services.DefaultRecentLimit)
	suite.Equal("ORD-AB7", orders[0].Number().String())
	suite.Equal("ORD-AB3", orders[4].Number().String())
}

func (suite *QueriesTestSuite) TestListTickets_FilteredByStatus() {
	handler := queries.NewListTicketsQueryHandler(suite.tickets)
	preparing := kitchen.Preparing

	query, err := queries.NewListTicketsQuery(&preparing)
	suite.Require().NoError(err)
	tickets, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(tickets, 3)

	query, _ = queries.NewListTicketsQuery(nil)
	tickets, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(tickets, 7)
}

func (suite *QueriesTestSuite) TestGetTicket() {
	handler := queries.NewGetTicketQueryHandler(suite.tickets)

	query, _ := queries.NewGetTicketQuery(kernel.MustOrderNumber("ORD-AB1"))
	ticket, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(kitchen.Preparing, ticket.Status())
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func TestQueryConstructors(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.OrderNumber{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	unknown := kitchen.Unknown
	_, err = queries.NewListTicketsQuery(&unknown)
	require.ErrorIs(t, err, errs.ErrInvalidStatus)

	blank := ""
	assert.Nil(t, queries.NewListOrdersQuery(&blank, "", 0).UserID())
	assert.Equal(t, services.DefaultRecentLimit, queries.NewRecentOrdersQuery(nil, -1).Limit())

	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
