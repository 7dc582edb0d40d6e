// backend/fetcher/json_parser.go
package fetcher

import (
	"fmt"
	"log"

	"github.com/avtrack/commondest/backend/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonAirport mirrors one airport entry of the structured per-airport
// dataset (airline_routes.json). Fields the query never touches are not
// decoded.
type jsonAirport struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	CityName    string      `json:"city_name"`
	Country     string      `json:"country"`
	Routes      []jsonRoute `json:"routes"`
}

type jsonRoute struct {
	IATA string `json:"iata"`
	Min  *int   `json:"min"`
}

// ParseAirportJSON decodes the structured dataset into a RouteIndex.
// Airports keep their display metadata; route entries without a
// destination code are skipped. Duplicate destination entries are
// retained in payload order — the first-match duration policy in the
// services layer depends on that.
func ParseAirportJSON(body []byte) (models.RouteIndex, error) {
	var airports map[string]jsonAirport
	if err := json.Unmarshal(body, &airports); err != nil {
		return nil, fmt.Errorf("failed to decode airport JSON data: %w", err)
	}

	index := make(models.RouteIndex, len(airports))
	skippedRoutes := 0

	for code, entry := range airports {
		name := entry.DisplayName
		if name == "" {
			name = entry.Name
		}

		rec := &models.AirportRecord{
			Code:    code,
			Name:    name,
			City:    entry.CityName,
			Country: entry.Country,
		}

		for _, route := range entry.Routes {
			if route.IATA == "" {
				skippedRoutes++
				continue
			}
			rec.Routes = append(rec.Routes, models.Route{
				DestinationCode: route.IATA,
				DurationMinutes: route.Min,
			})
		}

		index[code] = rec
	}

	if skippedRoutes > 0 {
		log.Printf("Fetcher: skipped %d route entries without a destination code\n", skippedRoutes)
	}
	log.Printf("Fetcher: parsed %d airport entries from JSON dataset\n", len(index))
	return index, nil
}
