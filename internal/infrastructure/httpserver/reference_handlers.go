package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver/helpers"
)

func (s *Server) listHolidays(c echo.Context) error {
	year, err := helpers.QueryInt(c, "year", 0)
	if err != nil {
		return err
	}
	holidays, err := s.referenceSvc.Holidays(helpers.UpstreamContext(c), year, helpers.ForceRefresh(c))
	if err != nil {
		return s.serviceError(c, err, "list holidays")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"holidays": holidays})
}
