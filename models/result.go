// backend/models/result.go
package models

// AirportInfo is the display metadata extracted for one airport.
type AirportInfo struct {
	DisplayName string `json:"display_name"`
	Location    string `json:"location,omitempty"`
}

// CommonDestinationRow is one destination reachable directly from both
// queried origins. Duration fields are nil when the source data carries
// no duration for that leg; the absolute difference is only set when
// both durations are present. Missing values are legitimate row states,
// never errors.
type CommonDestinationRow struct {
	DestinationCode       string `json:"destination_code"`
	DurationFromOrigin1   *int   `json:"duration_from_origin1,omitempty"`
	DurationFromOrigin2   *int   `json:"duration_from_origin2,omitempty"`
	AbsDurationDifference *int   `json:"abs_duration_difference,omitempty"`
	DisplayName           string `json:"display_name,omitempty"`
	Location              string `json:"location,omitempty"`
}

// CompareResult is the full answer to one common-destinations query.
// NoRoutesFrom1/NoRoutesFrom2 flag origins that produced an empty
// destination set (unknown airport or no outbound routes) — these are
// informational, the query still succeeds with zero rows.
type CompareResult struct {
	Airport1      string                 `json:"airport1"`
	Airport2      string                 `json:"airport2"`
	NoRoutesFrom1 bool                   `json:"no_routes_from_airport1,omitempty"`
	NoRoutesFrom2 bool                   `json:"no_routes_from_airport2,omitempty"`
	Rows          []CommonDestinationRow `json:"rows"`
}

// DestinationsResponse is the payload for the per-airport destinations
// endpoint.
type DestinationsResponse struct {
	Airport      string      `json:"airport"`
	Destinations Set[string] `json:"destinations"`
}
