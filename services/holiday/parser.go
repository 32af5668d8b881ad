package holiday

import (
	"strings"

	"workdate/models"
)

// parseCatalog extracts holiday dates from a decoded catalog document. Three
// shapes are recognised and their contributions merged: a top-level array of
// date strings, a top-level array of objects carrying a "date" or "fecha"
// field, and an object whose values are arrays of either item shape. Items
// that match none of these are skipped.
func parseCatalog(doc any) models.HolidaySet {
	set := models.HolidaySet{}
	switch v := doc.(type) {
	case []any:
		collectDates(v, set)
	case map[string]any:
		for _, field := range v {
			if items, ok := field.([]any); ok {
				collectDates(items, set)
			}
		}
	}
	return set
}

func collectDates(items []any, set models.HolidaySet) {
	for _, item := range items {
		switch it := item.(type) {
		case string:
			addDate(set, it)
		case map[string]any:
			if s, ok := it["date"].(string); ok {
				addDate(set, s)
				continue
			}
			if s, ok := it["fecha"].(string); ok {
				addDate(set, s)
			}
		}
	}
}

// addDate keeps only the calendar-date portion: anything from the first "T"
// on (a time component) is dropped.
func addDate(set models.HolidaySet, raw string) {
	date, _, _ := strings.Cut(raw, "T")
	if date != "" {
		set.Add(date)
	}
}
