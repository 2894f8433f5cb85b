package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/core/domain/timeslip"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

// listTimeslips serves ?period=YYYY-MM, defaulting to the current period.
func (s *Server) listTimeslips(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	slips, err := s.timeslipSvc.List(helpers.UpstreamContext(c), employeeID, c.QueryParam("period"), helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "list timeslips")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"timeslips": slips})
}

func (s *Server) submitTimeslip(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	var req timeslip.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	slip, err := s.timeslipSvc.Submit(helpers.UpstreamContext(c), employeeID, &req)
	if err != nil {
		return s.serviceError(c, err, "submit timeslip")
	}
	return c.JSON(http.StatusCreated, slip)
}
