// backend/handlers/compare_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/avtrack/commondest/backend/models"
	"github.com/avtrack/commondest/backend/services"
	"github.com/avtrack/commondest/backend/utils"
	"github.com/labstack/echo/v4"
)

// CommonDestinationsHandler handles
// GET /api/common-destinations?airport1=SEA&airport2=BOS[&max_diff=90].
// max_diff filters rows by absolute duration difference in minutes;
// omitting it returns every common destination.
func CommonDestinationsHandler(c echo.Context) error {
	airport1 := c.QueryParam("airport1")
	airport2 := c.QueryParam("airport2")

	if airport1 == "" {
		return respondWithError(c, http.StatusBadRequest, "missing 'airport1' query parameter")
	}
	if airport2 == "" {
		return respondWithError(c, http.StatusBadRequest, "missing 'airport2' query parameter")
	}
	if !utils.IsValidAirportCode(airport1) {
		return respondWithError(c, http.StatusBadRequest, "'airport1' is not a valid airport code")
	}
	if !utils.IsValidAirportCode(airport2) {
		return respondWithError(c, http.StatusBadRequest, "'airport2' is not a valid airport code")
	}

	input := services.CompareInput{
		Airport1: airport1,
		Airport2: airport2,
	}

	if raw := c.QueryParam("max_diff"); raw != "" {
		maxDiff, err := strconv.Atoi(raw)
		if err != nil || maxDiff < 0 {
			return respondWithError(c, http.StatusBadRequest, "'max_diff' must be a non-negative integer")
		}
		input.MaxDifference = &maxDiff
	}

	result, err := services.CompareDestinations(input)
	if err != nil {
		return respondWithFetchError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// respondWithFetchError maps a dataset failure onto an HTTP status: the
// upstream dataset being unreachable or unusable is a gateway problem,
// not a client one.
func respondWithFetchError(c echo.Context, err error) error {
	var fetchErr *models.FetchError
	if errors.As(err, &fetchErr) {
		status := http.StatusBadGateway
		if fetchErr.Cause == models.FetchCauseNetwork {
			status = http.StatusGatewayTimeout
		}
		return respondWithError(c, status, fetchErr.Error())
	}
	return respondWithError(c, http.StatusInternalServerError, err.Error())
}

func respondWithError(c echo.Context, code int, message string) error {
	log.Printf("Handler: API error %d: %s\n", code, message)
	return c.JSON(code, map[string]string{"error": message})
}
