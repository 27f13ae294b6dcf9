package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register handles POST /auth/register.
//
//	@Summary	Register a customer
//	@Tags		auth
//	@ID			register
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RegisterRequest	true	"Customer"
//	@Success	201		{object}	AuthResponse
//	@Failure	400		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/auth/register [post]
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := s.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, AuthResponse{User: toUserResponse(user), Token: token})
}

// Login handles POST /auth/login.
//
//	@Summary	Log in
//	@Tags		auth
//	@ID			login
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	AuthResponse
//	@Failure	400		{object}	Error
//	@Failure	401		{object}	Error
//	@Router		/auth/login [post]
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, AuthResponse{User: toUserResponse(user), Token: token})
}

// Me handles GET /auth/me: the principal for a bearer token, or null for a guest.
//
//	@Summary	Current principal, null for a guest
//	@Tags		auth
//	@ID			me
//	@Produce	json
//	@Param		Authorization	header		string	false	"Bearer token"
//	@Success	200				{object}	auth.Principal
//	@Failure	401				{object}	Error
//	@Router		/auth/me [get]
func (s *Server) Me(c echo.Context) error {
	if p, ok := principalFrom(c); ok {
		return c.JSON(http.StatusOK, p)
	}
	return c.JSON(http.StatusOK, nil)
}
