package calendar

import (
	"time"

	"workdate/models"
)

// NormalizeBackward snaps an arbitrary instant backward (never forward) to
// the latest valid working instant at or before it. Already-normalized
// instants are returned unchanged, so the operation is idempotent.
func NormalizeBackward(cal models.BusinessCalendar, t time.Time, holidays models.HolidaySet) time.Time {
	t = t.In(cal.Location)

	// A weekend or holiday date, regardless of time of day: back up whole
	// days anchored to closing time until a working day is found.
	if !IsWorkingDay(cal, t, holidays) {
		for {
			t = cal.At(t.AddDate(0, 0, -1), cal.CloseHour)
			if IsWorkingDay(cal, t, holidays) {
				return t
			}
		}
	}

	h := t.Hour()
	switch {
	case h >= cal.LunchStartHour && h < cal.LunchEndHour:
		return cal.At(t, cal.LunchStartHour)
	case h >= cal.CloseHour:
		return cal.At(t, cal.CloseHour)
	case h < cal.OpenHour:
		// Before opening: the previous working day's close.
		t = cal.At(t.AddDate(0, 0, -1), cal.CloseHour)
		for !IsWorkingDay(cal, t, holidays) {
			t = cal.At(t.AddDate(0, 0, -1), cal.CloseHour)
		}
		return t
	default:
		return t
	}
}
