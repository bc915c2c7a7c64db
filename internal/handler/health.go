package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness probe used by load balancers and monitoring.
// It answers before the catalog is loaded so orchestration can tell a
// slow start from a dead process.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
