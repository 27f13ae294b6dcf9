package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AddToCart handles POST /cart/add. Name and price may be left to the catalog.
//
//	@Summary	Add a product to a cart
//	@Tags		cart
//	@ID			addToCart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		AddToCartRequest	true	"Cart line"
//	@Success	200		{object}	CartMutationResponse
//	@Failure	400		{object}	Error
//	@Router		/cart/add [post]
func (s *Server) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := toLineItem(s.menu, LineItemRequest{
		ID:       req.ProductID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}

	updated, err := s.carts.Add(req.CartID, item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CartMutationResponse{Message: "Item added to cart", Cart: toCartResponse(updated)})
}

// GetCart handles GET /cart/:cartId. An unknown cart is returned empty.
//
//	@Summary	Get a cart
//	@Tags		cart
//	@ID			getCart
//	@Produce	json
//	@Param		cartId	path		string	true	"Cart id"
//	@Success	200		{object}	CartResponse
//	@Router		/cart/{cartId} [get]
func (s *Server) GetCart(c echo.Context) error {
	current, err := s.carts.Get(c.Param("cartId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(current))
}

// RemoveFromCart handles POST /cart/remove.
//
//	@Summary	Remove a product from a cart
//	@Tags		cart
//	@ID			removeFromCart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RemoveFromCartRequest	true	"Cart line"
//	@Success	200		{object}	CartMutationResponse
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/cart/remove [post]
func (s *Server) RemoveFromCart(c echo.Context) error {
	var req RemoveFromCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := s.carts.Remove(req.CartID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CartMutationResponse{Message: "Item removed", Cart: toCartResponse(updated)})
}

// ClearCart handles POST /cart/clear.
//
//	@Summary	Clear a cart
//	@Tags		cart
//	@ID			clearCart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		ClearCartRequest	true	"Cart"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/cart/clear [post]
func (s *Server) ClearCart(c echo.Context) error {
	var req ClearCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := s.carts.Clear(req.CartID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared"})
}

// Checkout handles POST /cart/checkout. The cart is placed as an order and
// emptied; on failure its lines are put back.
//
//	@Summary	Place a cart as an order
//	@Tags		cart
//	@ID			checkout
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CheckoutRequest	true	"Cart"
//	@Success	201		{object}	PlacedOrderResponse
//	@Failure	400		{object}	Error
//	@Router		/cart/checkout [post]
func (s *Server) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	taken, err := s.carts.Take(req.CartID)
	if err != nil {
		return err
	}

	o, err := s.sync.PlaceOrder(c.Request().Context(), taken.Items, orderOwner(c, req.UserID))
	if err != nil {
		s.carts.Restore(taken)
		return err
	}
	return c.JSON(http.StatusCreated, PlacedOrderResponse{Success: true, Order: toOrderResponse(o)})
}
