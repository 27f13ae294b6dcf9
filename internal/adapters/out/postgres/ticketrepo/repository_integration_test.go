package ticketrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/ticketrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TicketRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	repository *ticketrepo.GormTicketRepository
	base       time.Time
}

func (suite *TicketRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), postgres.Config())
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.base = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
}

func (suite *TicketRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE kitchen_tickets").Error)
	suite.repository = ticketrepo.NewGormTicketRepository(suite.db)
}

func (suite *TicketRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TicketRepositoryIntegrationTestSuite) TestAdd_ValidTicket_RoundTrips() {
	ctx := context.Background()
	ticket := suite.createTestTicket("ORD-1", suite.base)

	suite.Require().NoError(suite.repository.Add(ctx, ticket))

	stored, err := suite.repository.Get(ctx, ticket.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(kitchen.Pending, stored.Status())
	suite.Equal(kitchen.DefaultPrepTimeMinutes, stored.PrepTimeMinutes())
	suite.True(suite.base.Add(30 * time.Minute).Equal(stored.EstimatedReadyAt()))
	suite.True(suite.base.Equal(stored.SentToKitchenAt()))
	suite.Nil(stored.StartedAt())
	suite.Nil(stored.AssignedTo())
	suite.Len(stored.Items(), 1)
}

func (suite *TicketRepositoryIntegrationTestSuite) TestAdd_SecondTicketForOrder_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTicket("ORD-1", suite.base)))

	err := suite.repository.Add(ctx, suite.createTestTicket("ORD-1", suite.base))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *TicketRepositoryIntegrationTestSuite) TestUpdate_PersistsKitchenProgress() {
	ctx := context.Background()
	ticket := suite.createTestTicket("ORD-1", suite.base)
	suite.Require().NoError(suite.repository.Add(ctx, ticket))

	prepTime := 12
	suite.Require().NoError(ticket.UpdateStatus(kitchen.Preparing, &prepTime, suite.base.Add(time.Minute)))
	suite.Require().NoError(ticket.Assign("Sam", suite.base.Add(2*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, ticket))

	stored, err := suite.repository.Get(ctx, ticket.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(kitchen.Preparing, stored.Status())
	suite.Equal(12, stored.PrepTimeMinutes())
	suite.True(suite.base.Add(13 * time.Minute).Equal(stored.EstimatedReadyAt()))
	suite.Require().NotNil(stored.StartedAt())
	suite.True(suite.base.Add(time.Minute).Equal(*stored.StartedAt()))
	suite.Equal("Sam", *stored.AssignedTo())
	suite.Nil(stored.ReadyAt())
}

func (suite *TicketRepositoryIntegrationTestSuite) TestList_OrderedByDispatch() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTicket("ORD-B", suite.base.Add(time.Minute))))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTicket("ORD-A", suite.base)))

	tickets, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(tickets, 2)
	suite.Equal("ORD-A", tickets[0].OrderNumber().String())
}

func (suite *TicketRepositoryIntegrationTestSuite) TestMissingTicket() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.MustOrderNumber("ORD-404"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, suite.createTestTicket("ORD-404", suite.base))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	deleted, err := suite.repository.Delete(ctx, kernel.MustOrderNumber("ORD-404"))
	suite.Require().NoError(err)
	suite.False(deleted)
}

func (suite *TicketRepositoryIntegrationTestSuite) createTestTicket(number string, now time.Time) *kitchen.Ticket {
	item, err := kernel.NewLineItem(101, "Classic Burger", decimal.RequireFromString("8.99"), 1)
	suite.Require().NoError(err)

	ticket, err := kitchen.NewTicket(kernel.MustOrderNumber(number), []kernel.LineItem{item}, now, nil, kitchen.DefaultPrepTimeMinutes, now)
	suite.Require().NoError(err)
	return ticket
}

func TestTicketRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration suite in short mode")
	}
	suite.Run(t, new(TicketRepositoryIntegrationTestSuite))
}
