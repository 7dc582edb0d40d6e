// backend/handlers/destinations_handler.go
package handlers

import (
	"net/http"

	"github.com/avtrack/commondest/backend/services"
	"github.com/avtrack/commondest/backend/utils"
	"github.com/labstack/echo/v4"
)

// AirportDestinationsHandler handles GET /api/airports/:code/destinations.
// An airport unknown to the dataset yields an empty destination list,
// not an error.
func AirportDestinationsHandler(c echo.Context) error {
	code := c.Param("code")
	if !utils.IsValidAirportCode(code) {
		return respondWithError(c, http.StatusBadRequest, "'code' is not a valid airport code")
	}

	result, err := services.AirportDestinations(code)
	if err != nil {
		return respondWithFetchError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
