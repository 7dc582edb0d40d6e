// backend/models/set.go
package models

import (
	"encoding/json"
	"sort"
)

// Set is a generic membership set. Destination sets derived from a
// RouteIndex are read-only once built.
type Set[T comparable] map[T]struct{}

func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

func (s Set[T]) Contains(value T) bool {
	_, ok := s[value]
	return ok
}

// Intersect returns a new set holding the values present in both s and
// other. It is symmetric: s.Intersect(o) equals o.Intersect(s).
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	r := make(Set[T])
	for value := range small {
		if large.Contains(value) {
			r.Add(value)
		}
	}
	return r
}

func (s *Set[T]) UnmarshalJSON(bytes []byte) error {
	var values []T
	if err := json.Unmarshal(bytes, &values); err != nil {
		return err
	}

	r := make(Set[T], len(values))
	for _, value := range values {
		r.Add(value)
	}

	*s = r
	return nil
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	values := make([]T, 0, len(s))
	for value := range s {
		values = append(values, value)
	}

	return json.Marshal(values)
}

// SortedStrings returns the set's values sorted lexicographically, for
// stable output and iteration.
func SortedStrings(s Set[string]) []string {
	values := make([]string, 0, len(s))
	for value := range s {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
