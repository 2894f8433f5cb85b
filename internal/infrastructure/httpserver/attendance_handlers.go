package httpserver

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/core/domain/attendance"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

func (s *Server) getAttendanceToday(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	today, err := s.attendanceSvc.Today(helpers.UpstreamContext(c), employeeID, helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "get today's attendance")
	}
	return c.JSON(http.StatusOK, today)
}

// getAttendanceHistory serves ?month=YYYY-MM, defaulting to the current month.
func (s *Server) getAttendanceHistory(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	history, err := s.attendanceSvc.History(helpers.UpstreamContext(c), employeeID, c.QueryParam("month"), helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "get attendance history")
	}
	return c.JSON(http.StatusOK, history)
}

func (s *Server) checkIn(c echo.Context) error {
	return s.check(c, s.attendanceSvc.CheckIn, "check in")
}

func (s *Server) checkOut(c echo.Context) error {
	return s.check(c, s.attendanceSvc.CheckOut, "check out")
}

type checkFunc = func(ctx context.Context, employeeID uuid.UUID, req *attendance.CheckRequest) (*attendance.Record, error)

func (s *Server) check(c echo.Context, do checkFunc, action string) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	var req attendance.CheckRequest
	// an empty body binds to a check without location
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	record, err := do(helpers.UpstreamContext(c), employeeID, &req)
	if err != nil {
		return s.serviceError(c, err, action)
	}
	return c.JSON(http.StatusOK, record)
}
