package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/hrapi"
)

// validatable is implemented by every request body the gateway accepts.
type validatable interface {
	Validate() error
}

// requestValidator lets handlers use c.Validate on domain request types.
type requestValidator struct{}

func (requestValidator) Validate(i interface{}) error {
	if v, ok := i.(validatable); ok {
		return v.Validate()
	}
	return nil
}

// serviceError turns a service error into the HTTP error returned to the app.
// Client mistakes keep their message; upstream failures are reported as a bad
// gateway without leaking upstream details.
func (s *Server) serviceError(c echo.Context, err error, action string) error {
	code, msg := statusFor(err)
	if s.logger != nil && code >= http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", c.Path()).Errorf("failed to %s", action)
	}
	return echo.NewHTTPError(code, msg)
}

func statusFor(err error) (int, string) {
	var apiErr *hrapi.APIError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "hr api timed out"
	case errors.Is(err, hrapi.ErrUnauthorized):
		return http.StatusUnauthorized, "hr api rejected the credentials"
	case errors.Is(err, hrapi.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, hrapi.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, hrapi.ErrRateLimited):
		return http.StatusTooManyRequests, "hr api rate limit exceeded"
	case errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.StatusCode)
		}
		return apiErr.StatusCode, msg
	default:
		return http.StatusBadGateway, "hr api unavailable"
	}
}
