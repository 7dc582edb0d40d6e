// backend/models/route.go
package models

// Route is a single directed route entry: a destination airport plus an
// optional scheduled duration. The OpenFlights CSV feed carries no
// durations, so DurationMinutes is nil for every route built from it.
type Route struct {
	DestinationCode string `json:"destination_code"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}

// AirportRecord holds everything we know about one airport: its outbound
// routes in source order, plus display metadata when the source provides
// it. Duplicate destination entries are kept as-is; duration resolution
// policy lives in the services layer.
type AirportRecord struct {
	Code    string  `json:"code"`
	Name    string  `json:"name,omitempty"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
	Routes  []Route `json:"routes"`
}

// RouteIndex maps an IATA code to its airport record. It is rebuilt from
// the remote dataset on every query and never shared across queries.
type RouteIndex map[string]*AirportRecord

// Airport returns the record for code, or nil if the dataset has no
// entry for it.
func (idx RouteIndex) Airport(code string) *AirportRecord {
	return idx[code]
}

// AddRoute appends a route to the airport's record, creating the record
// if this is the first time the source code appears.
func (idx RouteIndex) AddRoute(source string, route Route) {
	rec, ok := idx[source]
	if !ok {
		rec = &AirportRecord{Code: source}
		idx[source] = rec
	}
	rec.Routes = append(rec.Routes, route)
}

// OpenFlightsRoute mirrors one row of the OpenFlights routes.dat feed.
// The file has no header line, so the column names below are supplied to
// the CSV decoder explicitly. Only the source and destination airport
// columns are consumed.
type OpenFlightsRoute struct {
	Airline              string `csv:"airline"`
	AirlineID            string `csv:"airline_id"`
	SourceAirport        string `csv:"source_airport"`
	SourceAirportID      string `csv:"source_airport_id"`
	DestinationAirport   string `csv:"destination_airport"`
	DestinationAirportID string `csv:"destination_airport_id"`
	Codeshare            string `csv:"codeshare"`
	Stops                string `csv:"stops"`
	Equipment            string `csv:"equipment"`
}
