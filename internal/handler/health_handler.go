package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers the liveness probe: 200 with an empty body.
func HealthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
