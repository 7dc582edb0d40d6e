// backend/utils/airports.go
package utils

import "strings"

// NormalizeAirportCode converts 4-letter US ICAO codes (e.g., "KJFK") to
// 3-letter codes ("JFK"). Other codes are returned as is. Converts to
// uppercase.
func NormalizeAirportCode(code string) string {
	upperCode := strings.ToUpper(strings.TrimSpace(code))
	if len(upperCode) == 4 && strings.HasPrefix(upperCode, "K") {
		return upperCode[1:]
	}
	return upperCode
}

// IsValidAirportCode reports whether code normalizes to a plausible
// 3-letter IATA identifier.
func IsValidAirportCode(code string) bool {
	normalized := NormalizeAirportCode(code)
	if len(normalized) != 3 {
		return false
	}
	for _, r := range normalized {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
