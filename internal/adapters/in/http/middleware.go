package http

import (
	"strings"

	"ordering/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const principalKey = "principal"

// RequestLogger writes one access log line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	logger = logger.With(zap.String("component", "http"))

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestId", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("Request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("Request", fields...)
			return nil
		},
	})
}

// Authenticate resolves an optional bearer token into the request principal. No
// Authorization header means a guest; a malformed or rejected token is a 401.
func Authenticate(users *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				return auth.ErrInvalidToken
			}

			principal, err := users.Authenticate(token)
			if err != nil {
				return err
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(principalKey).(auth.Principal)
	return p, ok
}
