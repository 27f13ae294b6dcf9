package http

import (
	"net/http"
	"strings"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"

	"github.com/labstack/echo/v4"
)

// SendToKitchen handles POST /kitchen/send-order.
//
//	@Summary	Dispatch a kitchen ticket
//	@Tags		kitchen
//	@ID			sendToKitchen
//	@Accept		json
//	@Produce	json
//	@Param		body	body		SendToKitchenRequest	true	"Ticket"
//	@Success	201		{object}	TicketMutationResponse
//	@Failure	400		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/kitchen/send-order [post]
func (s *Server) SendToKitchen(c echo.Context) error {
	var req SendToKitchenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	number, err := kernel.OrderNumberFromString(req.OrderNumber)
	if err != nil {
		return err
	}

	items, err := toLineItems(s.menu, req.Items)
	if err != nil {
		return err
	}

	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	cmd, err := commands.NewDispatchTicketCommand(number, items, createdAt, req.UserID)
	if err != nil {
		return err
	}

	ticket, err := s.handlers.DispatchTicket.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, TicketMutationResponse{Success: true, Ticket: toTicketResponse(ticket)})
}

// ListTickets handles GET /kitchen/orders with an optional ?status= filter.
//
//	@Summary	Kitchen board
//	@Tags		kitchen
//	@ID			listTickets
//	@Produce	json
//	@Param		status	query		string			false	"Ticket status"	Enums(pending, preparing, ready, completed)
//	@Success	200		{array}		TicketResponse
//	@Header		200		{integer}	X-Poll-Interval	"Seconds until the next poll"
//	@Failure	400		{object}	Error
//	@Router		/kitchen/orders [get]
func (s *Server) ListTickets(c echo.Context) error {
	var status *kitchen.Status
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		parsed, err := kitchen.ParseStatus(raw)
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListTicketsQuery(status)
	if err != nil {
		return err
	}

	tickets, err := s.handlers.ListTickets.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	setPollInterval(c, s.sync.Intervals().Board)
	return c.JSON(http.StatusOK, toTicketResponses(tickets))
}

// GetTicket handles GET /kitchen/orders/:orderNumber.
//
//	@Summary	Get a kitchen ticket
//	@Tags		kitchen
//	@ID			getTicket
//	@Produce	json
//	@Param		orderNumber	path		string			true	"Order number"
//	@Success	200			{object}	TicketResponse
//	@Header		200			{integer}	X-Poll-Interval	"Seconds until the next poll"
//	@Failure	404			{object}	Error
//	@Router		/kitchen/orders/{orderNumber} [get]
func (s *Server) GetTicket(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	ticket, err := s.sync.PollStatus(c.Request().Context(), number)
	if err != nil {
		return err
	}

	setPollInterval(c, s.sync.Intervals().Tracker)
	return c.JSON(http.StatusOK, toTicketResponse(ticket))
}

// UpdateTicketStatus handles PUT /kitchen/orders/:orderNumber/status.
//
//	@Summary	Update a ticket status and prep time
//	@Tags		kitchen
//	@ID			updateTicketStatus
//	@Accept		json
//	@Produce	json
//	@Param		orderNumber	path		string						true	"Order number"
//	@Param		body		body		UpdateTicketStatusRequest	true	"Status"
//	@Success	200			{object}	TicketMutationResponse
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/kitchen/orders/{orderNumber}/status [put]
func (s *Server) UpdateTicketStatus(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req UpdateTicketStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := kitchen.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTicketStatusCommand(number, status, req.PrepTime)
	if err != nil {
		return err
	}

	ticket, err := s.handlers.UpdateTicketStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TicketMutationResponse{Success: true, Ticket: toTicketResponse(ticket)})
}

// AssignTicket handles PUT /kitchen/orders/:orderNumber/assign.
//
//	@Summary	Assign a ticket to staff
//	@Tags		kitchen
//	@ID			assignTicket
//	@Accept		json
//	@Produce	json
//	@Param		orderNumber	path		string				true	"Order number"
//	@Param		body		body		AssignTicketRequest	true	"Staff"
//	@Success	200			{object}	TicketMutationResponse
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Router		/kitchen/orders/{orderNumber}/assign [put]
func (s *Server) AssignTicket(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}

	var req AssignTicketRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignTicketCommand(number, req.StaffName)
	if err != nil {
		return err
	}

	ticket, err := s.handlers.AssignTicket.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TicketMutationResponse{Success: true, Ticket: toTicketResponse(ticket)})
}

// DeleteTicket handles DELETE /kitchen/orders/:orderNumber.
//
//	@Summary	Delete a kitchen ticket
//	@Tags		kitchen
//	@ID			deleteTicket
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Order number"
//	@Success	200			{object}	SuccessResponse
//	@Router		/kitchen/orders/{orderNumber} [delete]
func (s *Server) DeleteTicket(c echo.Context) error {
	number, err := orderNumberParam(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteTicketCommand(number)
	if err != nil {
		return err
	}

	if _, err = s.handlers.DeleteTicket.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
