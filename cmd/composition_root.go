package cmd

import (
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/memory/dispatchqueue"
	memoryorders "ordering/internal/adapters/out/memory/orderrepo"
	memorytickets "ordering/internal/adapters/out/memory/ticketrepo"
	pgorders "ordering/internal/adapters/out/postgres/orderrepo"
	pgtickets "ordering/internal/adapters/out/postgres/ticketrepo"
	"ordering/internal/auth"
	"ordering/internal/cart"
	"ordering/internal/catalog"
	"ordering/internal/core/application/tracking"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/pkg/keylock"
	"ordering/internal/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg     Config
	logger  *zap.Logger
	clock   clockwork.Clock
	orders  ports.OrderRepository
	tickets ports.TicketRepository
	queue   ports.DispatchQueue
	locks   *keylock.KeyLock
	history services.OrderHistory
	taxRate decimal.Decimal
	menu    *catalog.Catalog
	carts   *cart.Store
	users   *auth.Service
}

// NewCompositionRoot keeps orders and tickets in gormDB when it is not nil and in
// process memory otherwise.
func NewCompositionRoot(cfg Config, log *zap.Logger, gormDB *gorm.DB, clock clockwork.Clock) (CompositionRoot, error) {
	taxRate, err := cfg.TaxRateDecimal()
	if err != nil {
		return CompositionRoot{}, err
	}
	location, err := cfg.SearchLocation()
	if err != nil {
		return CompositionRoot{}, err
	}

	var (
		orders  ports.OrderRepository
		tickets ports.TicketRepository
	)
	if gormDB != nil {
		orders = pgorders.NewGormOrderRepository(gormDB)
		tickets = pgtickets.NewGormTicketRepository(gormDB)
	} else {
		orders = memoryorders.NewMemoryOrderRepository()
		tickets = memorytickets.NewMemoryTicketRepository()
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, clock)

	return CompositionRoot{
		cfg:     cfg,
		logger:  log,
		clock:   clock,
		orders:  orders,
		tickets: tickets,
		queue:   dispatchqueue.NewMemoryDispatchQueue(),
		locks:   keylock.New(),
		history: services.NewOrderHistory(cfg.SearchDateLayout, location),
		taxRate: taxRate,
		menu:    catalog.NewStatic(),
		carts:   cart.NewStore(),
		users:   auth.NewService(auth.NewMemoryUserRepository(), tokens),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.clock, nil, c.taxRate)
}

func (c *CompositionRoot) CreateDispatchTicketCommandHandler() commands.DispatchTicketCommandHandler {
	return commands.NewDispatchTicketCommandHandler(c.tickets, c.clock, c.cfg.DefaultPrepTimeMinutes)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.CreateCreateOrderCommandHandler(),
		c.CreateDispatchTicketCommandHandler(),
		c.queue,
		c.clock,
		logger.Component(c.logger, "place_order"),
	)
}

func (c *CompositionRoot) CreateReconcileOrderCommandHandler() commands.ReconcileOrderCommandHandler {
	return commands.NewReconcileOrderCommandHandler(c.orders, c.tickets, c.locks)
}

func (c *CompositionRoot) CreateRedispatchFailedCommandHandler() commands.RedispatchFailedCommandHandler {
	return commands.NewRedispatchFailedCommandHandler(
		c.queue,
		c.orders,
		c.CreateDispatchTicketCommandHandler(),
		c.clock,
		logger.Component(c.logger, "redispatch"),
	)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders, c.history)
}

func (c *CompositionRoot) CreateSynchronizer() *tracking.Synchronizer {
	return tracking.NewSynchronizer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateReconcileOrderCommandHandler(),
		queries.NewGetTicketQueryHandler(c.tickets),
		c.clock,
		logger.Component(c.logger, "synchronizer"),
		tracking.Intervals{Tracker: c.cfg.TrackerPollInterval, Board: c.cfg.BoardPollInterval},
	)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	handlers := httpin.Handlers{
		SetOrderStatus:     commands.NewSetOrderStatusCommandHandler(c.orders, c.locks),
		DeleteOrder:        commands.NewDeleteOrderCommandHandler(c.orders, c.locks),
		DispatchTicket:     c.CreateDispatchTicketCommandHandler(),
		UpdateTicketStatus: commands.NewUpdateTicketStatusCommandHandler(c.tickets, c.locks, c.clock),
		AssignTicket:       commands.NewAssignTicketCommandHandler(c.tickets, c.locks, c.clock),
		DeleteTicket:       commands.NewDeleteTicketCommandHandler(c.tickets, c.locks),

		GetOrder:    queries.NewGetOrderQueryHandler(c.orders),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetTicket:   queries.NewGetTicketQueryHandler(c.tickets),
		ListTickets: queries.NewListTicketsQueryHandler(c.tickets),
	}
	return httpin.NewServer(handlers, c.CreateSynchronizer(), c.menu, c.carts, c.users)
}

func (c *CompositionRoot) CreateEcho() *echo.Echo {
	return httpin.NewEcho(c.CreateServer(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewRedispatchJob(c.CreateRedispatchFailedCommandHandler(), c.cfg.RedispatchSchedule, c.logger),
		jobs.NewReconcileJob(
			c.CreateListOrdersQueryHandler(),
			c.CreateReconcileOrderCommandHandler(),
			c.cfg.ReconcileSchedule,
			c.logger,
		),
	)
}
