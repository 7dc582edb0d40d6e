// backend/handlers/health_handler.go
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness. The service holds no state and no
// connections, so there is nothing deeper to probe.
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "common destinations backend is healthy",
	})
}
