package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

func (s *Server) listConversations(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	conversations, err := s.messageSvc.Conversations(helpers.UpstreamContext(c), employeeID, helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "list conversations")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"conversations": conversations})
}

func (s *Server) getThread(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	thread, err := s.messageSvc.Thread(helpers.UpstreamContext(c), employeeID, c.Param("id"), helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "get conversation")
	}
	return c.JSON(http.StatusOK, thread)
}

func (s *Server) sendMessage(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	var req message.SendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sent, err := s.messageSvc.Send(helpers.UpstreamContext(c), employeeID, c.Param("id"), &req)
	if err != nil {
		return s.serviceError(c, err, "send message")
	}
	return c.JSON(http.StatusCreated, sent)
}
