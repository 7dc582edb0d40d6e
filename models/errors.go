// backend/models/errors.go
package models

import "fmt"

// FetchCause classifies why a dataset fetch failed.
type FetchCause string

const (
	FetchCauseNetwork    FetchCause = "network"
	FetchCauseHTTPStatus FetchCause = "http_status"
	FetchCauseParse      FetchCause = "parse"
)

// FetchError is the single failure type the fetch boundary surfaces.
// Any network error, non-2xx status, or unparseable payload becomes a
// FetchError; nothing below the boundary panics or leaks raw transport
// errors. A FetchError for either origin aborts the whole query — the
// system never returns partial results when the dataset could not be
// loaded.
type FetchError struct {
	Cause   FetchCause
	URL     string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s failed (%s): %s: %v", e.URL, e.Cause, e.Message, e.Err)
	}
	return fmt.Sprintf("fetch %s failed (%s): %s", e.URL, e.Cause, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
