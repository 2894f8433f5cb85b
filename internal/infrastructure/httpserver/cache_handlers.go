package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

type refreshCacheRequest struct {
	Section string `json:"section"`
}

// refreshCache drops the caller's cached data so the next reads go upstream.
// An empty body or section refreshes everything.
func (s *Server) refreshCache(c echo.Context) error {
	employeeID, err := helpers.GetEmployeeIDFromContext(c)
	if err != nil {
		return err
	}
	var req refreshCacheRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Section == "" {
		req.Section = services.SectionAll
	}
	if err := s.cacheSvc.Refresh(c.Request().Context(), employeeID, req.Section); err != nil {
		return s.serviceError(c, err, "refresh cache")
	}
	return c.JSON(http.StatusOK, map[string]string{"section": req.Section, "status": "refreshed"})
}
