// backend/fetcher/fetcher_test.go
package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avtrack/commondest/backend/models"
	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRouteIndexCSV(t *testing.T) {
	srv := serve(t, "2B,410,SEA,3577,BOS,3448,,0,CR2\n", http.StatusOK)

	index, err := FetchRouteIndex(srv.URL, FormatAuto, time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, index.Airport("SEA"))
}

func TestFetchRouteIndexJSON(t *testing.T) {
	srv := serve(t, `{"SEA": {"name": "Seattle", "routes": [{"iata": "BOS", "min": 45}]}}`, http.StatusOK)

	index, err := FetchRouteIndex(srv.URL, FormatAuto, time.Second)
	assert.NoError(t, err)
	if assert.NotNil(t, index.Airport("SEA")) {
		assert.Len(t, index.Airport("SEA").Routes, 1)
	}
}

func TestFetchRouteIndexHTTPStatus(t *testing.T) {
	srv := serve(t, "not found", http.StatusNotFound)

	_, err := FetchRouteIndex(srv.URL, FormatAuto, time.Second)

	var fetchErr *models.FetchError
	if assert.ErrorAs(t, err, &fetchErr) {
		assert.Equal(t, models.FetchCauseHTTPStatus, fetchErr.Cause)
	}
}

func TestFetchRouteIndexNetworkError(t *testing.T) {
	srv := serve(t, "", http.StatusOK)
	url := srv.URL
	srv.Close()

	_, err := FetchRouteIndex(url, FormatAuto, time.Second)

	var fetchErr *models.FetchError
	if assert.ErrorAs(t, err, &fetchErr) {
		assert.Equal(t, models.FetchCauseNetwork, fetchErr.Cause)
	}
}

func TestFetchRouteIndexParseError(t *testing.T) {
	srv := serve(t, `{"SEA": truncated`, http.StatusOK)

	_, err := FetchRouteIndex(srv.URL, FormatJSON, time.Second)

	var fetchErr *models.FetchError
	if assert.ErrorAs(t, err, &fetchErr) {
		assert.Equal(t, models.FetchCauseParse, fetchErr.Cause)
	}
}

func TestFetchRouteIndexUnsupportedFormat(t *testing.T) {
	srv := serve(t, "", http.StatusOK)

	_, err := FetchRouteIndex(srv.URL, Format("xml"), time.Second)

	var fetchErr *models.FetchError
	if assert.ErrorAs(t, err, &fetchErr) {
		assert.Equal(t, models.FetchCauseParse, fetchErr.Cause)
	}
}

func TestSniffFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, SniffFormat([]byte("  {\"SEA\": {}}")))
	assert.Equal(t, FormatJSON, SniffFormat([]byte("[1, 2]")))
	assert.Equal(t, FormatCSV, SniffFormat([]byte("2B,410,SEA")))
	assert.Equal(t, FormatCSV, SniffFormat([]byte("")))
}
