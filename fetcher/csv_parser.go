// backend/fetcher/csv_parser.go
package fetcher

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/avtrack/commondest/backend/models"
	"github.com/jszwec/csvutil"
)

// openFlightsHeader names the nine fixed columns of routes.dat. The
// feed ships without a header line, so the decoder gets this one
// explicitly.
var openFlightsHeader = []string{
	"airline",
	"airline_id",
	"source_airport",
	"source_airport_id",
	"destination_airport",
	"destination_airport_id",
	"codeshare",
	"stops",
	"equipment",
}

// ParseRoutesCSV decodes the flat OpenFlights routes feed into a
// RouteIndex. Rows with a wrong column count or a missing source or
// destination code are skipped, not fatal; a payload that is not CSV at
// all (bad quoting, binary junk) fails the parse. This encoding carries
// no durations, so every route's DurationMinutes stays nil.
func ParseRoutesCSV(reader io.Reader) (models.RouteIndex, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = len(openFlightsHeader)
	csvReader.ReuseRecord = true

	decoder, err := csvutil.NewDecoder(csvReader, openFlightsHeader...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for routes: %w", err)
	}

	index := make(models.RouteIndex)
	skipped := 0
	rows := 0

	for {
		var row models.OpenFlightsRoute
		err := decoder.Decode(&row)
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				// Malformed entry, not a malformed payload.
				skipped++
				continue
			}
			return nil, fmt.Errorf("failed to decode routes CSV data: %w", err)
		}
		rows++

		source := cleanCode(row.SourceAirport)
		destination := cleanCode(row.DestinationAirport)
		if source == "" || destination == "" {
			skipped++
			continue
		}

		index.AddRoute(source, models.Route{DestinationCode: destination})
	}

	if rows == 0 && skipped > 0 {
		// Every single row was rejected: the payload is not the routes
		// feed, it just happened to survive the CSV reader.
		return nil, fmt.Errorf("no parseable route rows in payload (%d rejected)", skipped)
	}
	if skipped > 0 {
		log.Printf("Fetcher: skipped %d malformed route rows out of %d\n", skipped, rows+skipped)
	}
	log.Printf("Fetcher: parsed %d route rows into %d source airports\n", rows, len(index))
	return index, nil
}

// cleanCode maps the feed's null marker to an absent value.
func cleanCode(code string) string {
	if code == `\N` {
		return ""
	}
	return code
}
