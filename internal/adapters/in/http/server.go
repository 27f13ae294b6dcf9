// Package http is the JSON surface of the ordering service. Handlers translate
// requests into commands and queries and leave error mapping to NewErrorHandler.
package http

import (
	"net/http"
	"strconv"
	"time"

	"ordering/internal/auth"
	"ordering/internal/cart"
	"ordering/internal/catalog"
	"ordering/internal/core/application/tracking"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const headerPollInterval = "X-Poll-Interval"

// Handlers groups the use cases the server drives.
type Handlers struct {
	SetOrderStatus     commands.SetOrderStatusCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	DispatchTicket     commands.DispatchTicketCommandHandler
	UpdateTicketStatus commands.UpdateTicketStatusCommandHandler
	AssignTicket       commands.AssignTicketCommandHandler
	DeleteTicket       commands.DeleteTicketCommandHandler

	GetOrder    queries.GetOrderQueryHandler
	ListOrders  queries.ListOrdersQueryHandler
	GetTicket   queries.GetTicketQueryHandler
	ListTickets queries.ListTicketsQueryHandler
}

type Server struct {
	handlers Handlers
	sync     *tracking.Synchronizer
	menu     *catalog.Catalog
	carts    *cart.Store
	users    *auth.Service
}

func NewServer(
	handlers Handlers,
	sync *tracking.Synchronizer,
	menu *catalog.Catalog,
	carts *cart.Store,
	users *auth.Service,
) *Server {
	return &Server{
		handlers: handlers,
		sync:     sync,
		menu:     menu,
		carts:    carts,
		users:    users,
	}
}

// Health handles GET /health.
//
//	@Summary	Liveness check
//	@Tags		health
//	@ID			health
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func orderNumberParam(c echo.Context) (kernel.OrderNumber, error) {
	return kernel.OrderNumberFromString(c.Param("orderNumber"))
}

func setPollInterval(c echo.Context, interval time.Duration) {
	c.Response().Header().Set(headerPollInterval, strconv.Itoa(int(interval.Seconds())))
}
