package helpers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/infrastructure/hrapi"
)

func GetEmployeeIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := GetEmployeeIDRaw(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid employee context")
	}
	return id, nil
}

func GetJWTTokenFromContext(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "empty token")
	}
	return token, nil
}

// UpstreamContext returns the request context carrying what the HR API client
// forwards: the caller's token and the request id.
func UpstreamContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if token, ok := GetAccessTokenRaw(c); ok {
		ctx = hrapi.WithToken(ctx, token)
	}
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
		ctx = hrapi.WithRequestID(ctx, rid)
	}
	return ctx
}

// ForceRefresh reports whether the client asked to bypass the cache with
// ?refresh=true (or 1).
func ForceRefresh(c echo.Context) bool {
	v := c.QueryParam("refresh")
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// QueryInt parses an optional integer query parameter. Missing means def.
func QueryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" parameter")
	}
	return n, nil
}
