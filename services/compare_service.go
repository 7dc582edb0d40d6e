// backend/services/compare_service.go
package services

import (
	"log"
	"time"

	"github.com/avtrack/commondest/backend/config"
	"github.com/avtrack/commondest/backend/fetcher"
	"github.com/avtrack/commondest/backend/models"
	"github.com/avtrack/commondest/backend/utils"
)

// CompareInput holds the parameters of one common-destinations query.
// MaxDifference is nil when the caller supplied no threshold; zero is a
// meaningful threshold (only destinations with equal durations).
type CompareInput struct {
	Airport1      string
	Airport2      string
	MaxDifference *int
}

// CompareDestinations runs one full query: fetch the dataset, build
// both destination sets, intersect them, join in flight times and
// display metadata, and apply the optional difference threshold.
//
// A fetch failure aborts the whole query — no partial result is ever
// returned on top of a dataset that could not be loaded. Everything
// else (unknown airports, missing durations, missing metadata) degrades
// to empty or absent values inside the result.
func CompareDestinations(input CompareInput) (*models.CompareResult, error) {
	airport1 := utils.NormalizeAirportCode(input.Airport1)
	airport2 := utils.NormalizeAirportCode(input.Airport2)

	log.Printf("Service: comparing destinations for %s and %s\n", airport1, airport2)

	index, err := LoadRouteIndex()
	if err != nil {
		return nil, err
	}

	destinations1 := Destinations(index, airport1)
	destinations2 := Destinations(index, airport2)

	common := CommonDestinations(destinations1, destinations2)
	rows := JoinFlightTimes(index, airport1, airport2, common)

	info := AirportInfoMap(index)
	for i := range rows {
		if meta, ok := info[rows[i].DestinationCode]; ok {
			rows[i].DisplayName = meta.DisplayName
			rows[i].Location = meta.Location
		}
	}

	if input.MaxDifference != nil {
		before := len(rows)
		rows = FilterByMaxDifference(rows, *input.MaxDifference)
		log.Printf("Service: threshold %d min kept %d of %d rows\n", *input.MaxDifference, len(rows), before)
	}

	result := &models.CompareResult{
		Airport1:      airport1,
		Airport2:      airport2,
		NoRoutesFrom1: len(destinations1) == 0,
		NoRoutesFrom2: len(destinations2) == 0,
		Rows:          rows,
	}

	log.Printf("Service: %d common destinations for %s-%s\n", len(result.Rows), airport1, airport2)
	return result, nil
}

// AirportDestinations answers the single-airport lookup: the set of
// destinations reachable directly from code, against a fresh dataset.
func AirportDestinations(code string) (*models.DestinationsResponse, error) {
	airport := utils.NormalizeAirportCode(code)

	index, err := LoadRouteIndex()
	if err != nil {
		return nil, err
	}

	return &models.DestinationsResponse{
		Airport:      airport,
		Destinations: Destinations(index, airport),
	}, nil
}

// LoadRouteIndex fetches the configured dataset and builds a fresh
// RouteIndex. Every query rebuilds from scratch; nothing is cached
// across calls.
func LoadRouteIndex() (models.RouteIndex, error) {
	cfg := config.AppConfig.Dataset
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return fetcher.FetchRouteIndex(cfg.URL, fetcher.Format(cfg.Format), timeout)
}
