package calendar

import (
	"time"

	"workdate/models"
)

// IsWeekend reports whether t falls on a Saturday or Sunday in the business
// timezone.
func IsWeekend(cal models.BusinessCalendar, t time.Time) bool {
	wd := t.In(cal.Location).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay reports whether t's calendar date (business timezone) is a
// weekday that is not in the holiday set. Only the date matters, never the
// time of day.
func IsWorkingDay(cal models.BusinessCalendar, t time.Time, holidays models.HolidaySet) bool {
	if IsWeekend(cal, t) {
		return false
	}
	return !holidays.Contains(cal.DateKey(t))
}
