// backend/services/destination_service.go
package services

import (
	"log"

	"github.com/avtrack/commondest/backend/models"
)

// Destinations collects the distinct destination codes reachable
// directly from code. An airport absent from the index yields an empty
// set, the same queryable result as an airport with zero routes; the
// distinction is informational and logged, never an error.
func Destinations(index models.RouteIndex, code string) models.Set[string] {
	destinations := make(models.Set[string])

	rec := index.Airport(code)
	if rec == nil {
		log.Printf("Service: airport %s not found in route index\n", code)
		return destinations
	}

	for _, route := range rec.Routes {
		if route.DestinationCode == "" {
			continue
		}
		destinations.Add(route.DestinationCode)
	}
	return destinations
}

// CommonDestinations intersects two destination sets. Symmetric and
// idempotent.
func CommonDestinations(a, b models.Set[string]) models.Set[string] {
	return a.Intersect(b)
}

// JoinFlightTimes produces one row per common destination with the
// scheduled duration from each origin. Rows come back sorted by
// destination code so output is deterministic.
//
// Duration resolution is first-match-wins: the origin's routes are
// scanned in stored order and the first entry for the destination
// supplies the duration, even when later entries disagree. This
// replicates the upstream behavior for duplicate routes and is pinned
// by tests; it must not be changed to min or average.
func JoinFlightTimes(index models.RouteIndex, origin1, origin2 string, common models.Set[string]) []models.CommonDestinationRow {
	rows := make([]models.CommonDestinationRow, 0, len(common))

	for _, destination := range models.SortedStrings(common) {
		row := models.CommonDestinationRow{
			DestinationCode:     destination,
			DurationFromOrigin1: durationTo(index, origin1, destination),
			DurationFromOrigin2: durationTo(index, origin2, destination),
		}

		if row.DurationFromOrigin1 != nil && row.DurationFromOrigin2 != nil {
			diff := *row.DurationFromOrigin1 - *row.DurationFromOrigin2
			if diff < 0 {
				diff = -diff
			}
			row.AbsDurationDifference = &diff
		}

		rows = append(rows, row)
	}
	return rows
}

// durationTo returns the duration of the first stored route from origin
// to destination, or nil when the origin has no such route or the route
// carries no duration. A destination that came from the intersection
// should always have a route, but a missing one degrades to nil rather
// than failing the query.
func durationTo(index models.RouteIndex, origin, destination string) *int {
	rec := index.Airport(origin)
	if rec == nil {
		return nil
	}
	for _, route := range rec.Routes {
		if route.DestinationCode == destination {
			return route.DurationMinutes
		}
	}
	return nil
}

// AirportInfoMap extracts display metadata for every airport that has
// it. Entries without a display name are skipped with a note; a code
// missing from the mapping leaves the corresponding join row's display
// fields empty instead of failing the query.
func AirportInfoMap(index models.RouteIndex) map[string]models.AirportInfo {
	info := make(map[string]models.AirportInfo, len(index))

	for code, rec := range index {
		if rec.Name == "" {
			log.Printf("Service: airport %s has no display name, excluding from metadata\n", code)
			continue
		}

		location := rec.City
		if rec.Country != "" {
			if location != "" {
				location += ", " + rec.Country
			} else {
				location = rec.Country
			}
		}

		info[code] = models.AirportInfo{
			DisplayName: rec.Name,
			Location:    location,
		}
	}
	return info
}

// FilterByMaxDifference keeps rows whose absolute duration difference
// is present and at most max. Rows without a difference cannot be
// ranked against the threshold and are dropped when one is supplied.
func FilterByMaxDifference(rows []models.CommonDestinationRow, maxDiff int) []models.CommonDestinationRow {
	filtered := make([]models.CommonDestinationRow, 0, len(rows))
	for _, row := range rows {
		if row.AbsDurationDifference != nil && *row.AbsDurationDifference <= maxDiff {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
