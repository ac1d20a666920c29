package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the liveness probe on GET /.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Tutor Find server is running...")
}
