package http

import (
	"net/http"
	"strings"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders. It places the order and dispatches it to the
// kitchen. Without a userId in the body the caller's principal owns the order.
//
//	@Summary	Place an order
//	@Tags		orders
//	@ID			createOrder
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateOrderRequest	true	"Cart"
//	@Success	201		{object}	PlacedOrderResponse
//	@Failure	400		{object}	Error
//	@Failure	401		{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items, err := toLineItems(s.menu, req.Items)
	if err != nil {
		return err
	}

	o, err := s.sync.PlaceOrder(c.Request().Context(), items, orderOwner(c, req.UserID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, PlacedOrderResponse{Success: true, Order: toOrderResponse(o)})
}

// orderOwner falls back to the caller's principal when the body names no user.
func orderOwner(c echo.Context, userID *string) *string {
	if userID != nil && strings.TrimSpace(*userID) != "" {
		return userID
	}
	if p, ok := principalFrom(c); ok {
		return &p.ID
	}
	return userID
}

// ListOrders handles GET /orders?userId=.
//
//	@Summary	List orders
//	@Tags		orders
//	@ID			listOrders
//	@Produce	json
//	@Param		userId	query	string	false	"Owner"
//	@Success	200		{array}	OrderResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	query := queries.NewListOrdersQuery(queryUserID(c), "", 0)

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// SearchOrders handles GET /orders/search?q=&userId=.
//
//	@Summary	Search orders by number or date
//	@Tags		orders
//	@ID			searchOrders
//	@Produce	json
//	@Param		q		query	string	false	"Order number fragment or date"
//	@Param		userId	query	string	false	"Owner"
//	@Success	200		{array}	OrderResponse
//	@Router		/orders/search [get]
func (s *Server) SearchOrders(c echo.Context) error {
	query := queries.NewListOrdersQuery(queryUserID(c), c.QueryParam("q"), 0)

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// RecentOrders handles GET /orders/recent?limit=&userId=, newest first.
//
//	@Summary	Most recent orders
//	@Tags		orders
//	@ID			recentOrders
//	@Produce	json
//	@Param		limit	query		int		false	"Maximum number of orders"
//	@Param		userId	query		string	false	"Owner"
//	@Success	200		{array}		OrderResponse
//	@Failure	400		{object}	Error
//	@Router		/orders/recent [get]
func (s *Server) RecentOrders(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("limit", err)
	}

	query := queries.NewRecentOrdersQuery(queryUserID(c), limit)

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /orders/:orderNumber.
//
//	@Summary	Get an order
//	@Tags		orders
//	@ID			getOrder
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Order number"
//	@Success	200			{object}	OrderResponse
//	@Failure	404			{object}	Error
//	@Router		/orders/{orderNumber} [get]
func (s *Server) GetOrder(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// TrackOrder handles GET /orders/:orderNumber/track. The order is first moved
// forward to its ticket's status.
//
//	@Summary	Reconcile and track an order
//	@Tags		orders
//	@ID			trackOrder
//	@Produce	json
//	@Param		orderNumber	path		string			true	"Order number"
//	@Success	200			{object}	TrackResponse
//	@Header		200			{integer}	X-Poll-Interval	"Seconds until the next poll"
//	@Failure	404			{object}	Error
//	@Router		/orders/{orderNumber}/track [get]
func (s *Server) TrackOrder(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	snapshot, err := s.sync.Track(c.Request().Context(), number)
	if err != nil {
		return err
	}

	interval := s.sync.Intervals().Tracker
	response := TrackResponse{
		Order:               toOrderResponse(snapshot.Order),
		PollIntervalSeconds: int(interval.Seconds()),
	}
	if snapshot.Ticket != nil {
		ticket := toTicketResponse(snapshot.Ticket)
		response.Ticket = &ticket
	}

	setPollInterval(c, interval)
	return c.JSON(http.StatusOK, response)
}

// SetOrderStatus handles PUT /orders/:orderNumber/status.
//
//	@Summary	Override an order status
//	@Tags		orders
//	@ID			setOrderStatus
//	@Accept		json
//	@Produce	json
//	@Param		orderNumber	path		string					true	"Order number"
//	@Param		body		body		SetOrderStatusRequest	true	"Status"
//	@Success	200			{object}	OrderResponse
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/orders/{orderNumber}/status [put]
func (s *Server) SetOrderStatus(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req SetOrderStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderStatusCommand(number, status)
	if err != nil {
		return err
	}

	o, err := s.handlers.SetOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// DeleteOrder handles DELETE /orders/:orderNumber. Deleting an unknown order succeeds.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@ID			deleteOrder
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Order number"
//	@Success	200			{object}	SuccessResponse
//	@Router		/orders/{orderNumber} [delete]
func (s *Server) DeleteOrder(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(number)
	if err != nil {
		return err
	}

	if _, err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func queryUserID(c echo.Context) *string {
	userID := strings.TrimSpace(c.QueryParam("userId"))
	if userID == "" {
		return nil
	}
	return &userID
}
