package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

func (s *Server) getLeaveBalance(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	balances, err := s.leaveSvc.Balance(helpers.UpstreamContext(c), employeeID, helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "get leave balance")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"balances": balances})
}

func (s *Server) getLeaveTypes(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	types, err := s.leaveSvc.Types(helpers.UpstreamContext(c), employeeID, helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "list leave types")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"types": types})
}

func (s *Server) listLeaveRequests(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	requests, err := s.leaveSvc.Requests(helpers.UpstreamContext(c), employeeID, helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "list leave requests")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"total":    len(requests),
	})
}

func (s *Server) submitLeaveRequest(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	var req leave.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := s.leaveSvc.Submit(helpers.UpstreamContext(c), employeeID, &req)
	if err != nil {
		return s.serviceError(c, err, "submit leave request")
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) cancelLeaveRequest(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	cancelled, err := s.leaveSvc.Cancel(helpers.UpstreamContext(c), employeeID, c.Param("id"))
	if err != nil {
		return s.serviceError(c, err, "cancel leave request")
	}
	return c.JSON(http.StatusOK, cancelled)
}
