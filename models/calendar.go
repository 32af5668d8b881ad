package models

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical textual form of a calendar date.
const DateKeyLayout = "2006-01-02"

// BusinessCalendar describes the fixed working window of a single business
// timezone: open until lunch, lunch break, lunch end until close.
type BusinessCalendar struct {
	Location       *time.Location
	OpenHour       int
	LunchStartHour int
	LunchEndHour   int
	CloseHour      int
}

// NewBusinessCalendar loads the timezone and validates the window ordering.
func NewBusinessCalendar(timezone string, open, lunchStart, lunchEnd, close int) (BusinessCalendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return BusinessCalendar{}, fmt.Errorf("invalid business timezone %q: %w", timezone, err)
	}
	if !(open < lunchStart && lunchStart < lunchEnd && lunchEnd < close) {
		return BusinessCalendar{}, fmt.Errorf("invalid working window %d-%d/%d-%d", open, lunchStart, lunchEnd, close)
	}
	return BusinessCalendar{
		Location:       loc,
		OpenHour:       open,
		LunchStartHour: lunchStart,
		LunchEndHour:   lunchEnd,
		CloseHour:      close,
	}, nil
}

// At returns t's calendar date in the business zone anchored to the given
// whole hour (minutes, seconds and nanoseconds reset to zero).
func (cal BusinessCalendar) At(t time.Time, hour int) time.Time {
	local := t.In(cal.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, cal.Location)
}

// DateKey returns t's calendar date in the business zone as YYYY-MM-DD.
func (cal BusinessCalendar) DateKey(t time.Time) string {
	return t.In(cal.Location).Format(DateKeyLayout)
}
