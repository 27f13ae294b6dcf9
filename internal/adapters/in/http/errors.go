package http

import (
	"errors"
	"fmt"
	"net/http"

	"ordering/internal/auth"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var badRequestErrors = []error{
	errs.ErrInvalidCart,
	errs.ErrInvalidTicket,
	errs.ErrInvalidStatus,
	errs.ErrInvalidAssignment,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
}

// StatusOf maps an application error to its HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// NewErrorHandler replaces echo's default handler. Internal failures are logged and
// answered with a generic message.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	logger = logger.With(zap.String("component", "http"))

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var (
			be *echo.BindingError
			he *echo.HTTPError
		)
		if errors.As(err, &be) {
			code = be.Code
			message = fmt.Sprintf("%s: %v", be.Field, be.Message)
		} else if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else if code = StatusOf(err); code != http.StatusInternalServerError {
			message = err.Error()
		}

		if code >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}
