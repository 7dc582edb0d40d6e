// backend/fetcher/fetcher.go
package fetcher

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/avtrack/commondest/backend/models"
)

// Format selects which parser handles the fetched payload.
type Format string

const (
	// FormatAuto sniffs the payload: JSON when it starts with '{' or
	// '[', the flat OpenFlights CSV otherwise.
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DefaultTimeout bounds the single GET a query is allowed.
const DefaultTimeout = 10 * time.Second

// FetchRouteIndex performs one HTTP GET against url and parses the body
// into a RouteIndex. Every failure mode — transport, non-2xx status,
// unparseable payload — comes back as a *models.FetchError; this
// function never panics past its boundary and never returns a partial
// index alongside an error.
func FetchRouteIndex(url string, format Format, timeout time.Duration) (models.RouteIndex, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log.Printf("Fetcher: downloading route dataset from %s (format=%s, timeout=%s)\n", url, format, timeout)

	client := http.Client{
		Timeout: timeout,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, &models.FetchError{
			Cause:   models.FetchCauseNetwork,
			URL:     url,
			Message: "GET request failed",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.FetchError{
			Cause:   models.FetchCauseHTTPStatus,
			URL:     url,
			Message: fmt.Sprintf("received status code %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.FetchError{
			Cause:   models.FetchCauseNetwork,
			URL:     url,
			Message: "reading response body failed",
			Err:     err,
		}
	}

	if format == FormatAuto || format == "" {
		format = SniffFormat(body)
		log.Printf("Fetcher: sniffed dataset format %s for %s\n", format, url)
	}

	var index models.RouteIndex
	switch format {
	case FormatCSV:
		index, err = ParseRoutesCSV(bytes.NewReader(body))
	case FormatJSON:
		index, err = ParseAirportJSON(body)
	default:
		return nil, &models.FetchError{
			Cause:   models.FetchCauseParse,
			URL:     url,
			Message: fmt.Sprintf("unsupported dataset format %q", format),
		}
	}
	if err != nil {
		return nil, &models.FetchError{
			Cause:   models.FetchCauseParse,
			URL:     url,
			Message: "malformed dataset payload",
			Err:     err,
		}
	}

	log.Printf("Fetcher: built route index with %d airports from %s\n", len(index), url)
	return index, nil
}

// SniffFormat guesses the payload encoding. The structured dataset is a
// single JSON object keyed by IATA code; everything else is treated as
// the flat CSV feed.
func SniffFormat(body []byte) Format {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatCSV
}
