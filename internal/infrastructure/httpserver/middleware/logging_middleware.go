package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

type LoggingMiddleware struct {
	logger *logrus.Logger
}

func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// RequestLogging logs each request once it is served.
func (m *LoggingMiddleware) RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.logger == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			fields := logrus.Fields{
				"method":     c.Request().Method,
				"path":       c.Path(),
				"status":     c.Response().Status,
				"duration":   time.Since(start),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}
			if id, ok := helpers.GetEmployeeIDRaw(c); ok {
				fields["employee_id"] = id
			}
			if name, ok := helpers.GetEmployeeNameRaw(c); ok && name != "" {
				fields["employee_name"] = name
			}
			entry := m.logger.WithFields(fields)
			if err != nil {
				entry = entry.WithError(err)
			}
			entry.Debug("request served")
			return err
		}
	}
}
