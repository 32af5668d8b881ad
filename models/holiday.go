package models

import "sort"

// HolidaySet is a set of calendar dates in YYYY-MM-DD form. An empty set is
// valid and means "no known holidays".
type HolidaySet map[string]struct{}

// NewHolidaySet builds a set from the given dates.
func NewHolidaySet(dates ...string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set.Add(d)
	}
	return set
}

func (s HolidaySet) Add(date string) {
	s[date] = struct{}{}
}

func (s HolidaySet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// Dates returns the set's members sorted, for stable serialization.
func (s HolidaySet) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
