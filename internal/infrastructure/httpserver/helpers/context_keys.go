package helpers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey string

const (
	keyEmployeeID   ctxKey = "employee_id"
	keyEmployeeName ctxKey = "employee_name"
	keyAccessToken  ctxKey = "access_token"
)

func SetEmployeeID(c echo.Context, id uuid.UUID) { c.Set(string(keyEmployeeID), id) }
func GetEmployeeIDRaw(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(string(keyEmployeeID))
	id, ok := v.(uuid.UUID)
	return id, ok
}

func SetEmployeeName(c echo.Context, name string) { c.Set(string(keyEmployeeName), name) }
func GetEmployeeNameRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyEmployeeName))
	s, ok := v.(string)
	return s, ok
}

func SetAccessToken(c echo.Context, token string) { c.Set(string(keyAccessToken), token) }
func GetAccessTokenRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyAccessToken))
	s, ok := v.(string)
	return s, ok
}
