// backend/handlers/compare_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avtrack/commondest/backend/config"
	"github.com/avtrack/commondest/backend/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const datasetJSON = `{
	"SEA": {"name": "Seattle-Tacoma International Airport", "city_name": "Seattle", "country": "United States",
		"routes": [{"iata": "BOS", "min": 45}, {"iata": "LAX", "min": 120}]},
	"BOS": {"name": "Logan International Airport", "city_name": "Boston", "country": "United States",
		"routes": [{"iata": "SEA", "min": 45}, {"iata": "LAX", "min": 300}]},
	"LAX": {"name": "Los Angeles International Airport", "city_name": "Los Angeles", "country": "United States", "routes": []}
}`

func pointDatasetAt(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.Dataset = config.DatasetConfig{URL: srv.URL, Format: "auto", TimeoutSeconds: 2}
}

func datasetHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(datasetJSON))
}

func doRequest(t *testing.T, handler echo.HandlerFunc, target string, pathParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	assert.NoError(t, handler(c))
	return rec
}

func TestCommonDestinationsHandler(t *testing.T) {
	pointDatasetAt(t, datasetHandler)

	rec := doRequest(t, CommonDestinationsHandler, "/api/common-destinations?airport1=SEA&airport2=BOS", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.CompareResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	if assert.Len(t, result.Rows, 1) {
		assert.Equal(t, "LAX", result.Rows[0].DestinationCode)
		assert.Equal(t, 180, *result.Rows[0].AbsDurationDifference)
	}
}

func TestCommonDestinationsHandlerThreshold(t *testing.T) {
	pointDatasetAt(t, datasetHandler)

	rec := doRequest(t, CommonDestinationsHandler, "/api/common-destinations?airport1=SEA&airport2=BOS&max_diff=60", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.CompareResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Rows)
}

func TestCommonDestinationsHandlerValidation(t *testing.T) {
	pointDatasetAt(t, datasetHandler)

	for _, target := range []string{
		"/api/common-destinations",
		"/api/common-destinations?airport1=SEA",
		"/api/common-destinations?airport1=SEA&airport2=TOOLONG",
		"/api/common-destinations?airport1=SEA&airport2=BOS&max_diff=-5",
		"/api/common-destinations?airport1=SEA&airport2=BOS&max_diff=abc",
	} {
		rec := doRequest(t, CommonDestinationsHandler, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCommonDestinationsHandlerUpstreamFailure(t *testing.T) {
	pointDatasetAt(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	rec := doRequest(t, CommonDestinationsHandler, "/api/common-destinations?airport1=SEA&airport2=BOS", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAirportDestinationsHandler(t *testing.T) {
	pointDatasetAt(t, datasetHandler)

	rec := doRequest(t, AirportDestinationsHandler, "/api/airports/SEA/destinations", map[string]string{"code": "SEA"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.DestinationsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "SEA", result.Airport)
	assert.Len(t, result.Destinations, 2)
	assert.True(t, result.Destinations.Contains("LAX"))
}

func TestAirportDestinationsHandlerBadCode(t *testing.T) {
	pointDatasetAt(t, datasetHandler)

	rec := doRequest(t, AirportDestinationsHandler, "/api/airports/NOPE1/destinations", map[string]string{"code": "NOPE1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	rec := doRequest(t, HealthHandler, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
