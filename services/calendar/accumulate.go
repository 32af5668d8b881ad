package calendar

import (
	"math"
	"time"

	"workdate/models"
)

// AddBusinessDays advances t by the given number of whole business days,
// skipping weekends and holidays. The time of day is preserved verbatim;
// callers are expected to have normalized t first.
func AddBusinessDays(cal models.BusinessCalendar, t time.Time, days int, holidays models.HolidaySet) time.Time {
	if days <= 0 {
		return t
	}
	t = t.In(cal.Location)
	for i := 0; i < days; i++ {
		t = t.AddDate(0, 0, 1)
		for !IsWorkingDay(cal, t, holidays) {
			t = t.AddDate(0, 0, 1)
		}
	}
	return t
}

// AddBusinessHours advances t by the given number of business hours,
// consuming time only inside working segments and spilling over lunch
// breaks, closing time, weekends and holidays. Fractional hours are
// supported; the clock advances in whole minutes (nearest-minute rounding).
func AddBusinessHours(cal models.BusinessCalendar, t time.Time, hours float64, holidays models.HolidaySet) time.Time {
	if hours <= 0 {
		return t
	}
	t = t.In(cal.Location)

	remaining := hours
	for remaining > 0 {
		if !IsWorkingDay(cal, t, holidays) {
			t = cal.At(t.AddDate(0, 0, 1), cal.OpenHour)
			continue
		}
		h := t.Hour()
		switch {
		case h < cal.OpenHour:
			t = cal.At(t, cal.OpenHour)
		case h >= cal.LunchStartHour && h < cal.LunchEndHour:
			t = cal.At(t, cal.LunchEndHour)
		case h >= cal.CloseHour:
			t = cal.At(t.AddDate(0, 0, 1), cal.OpenHour)
		default:
			// Inside a working segment: consume up to the segment end.
			segmentEnd := cal.At(t, cal.CloseHour)
			if h < cal.LunchStartHour {
				segmentEnd = cal.At(t, cal.LunchStartHour)
			}
			available := segmentEnd.Sub(t).Hours()
			if remaining >= available {
				// Whole segment consumed: land exactly on its end.
				// Minute rounding applies only to partial consumption.
				t = segmentEnd
				remaining -= available
			} else {
				t = t.Add(time.Duration(math.Round(remaining*60)) * time.Minute)
				remaining = 0
			}
		}
	}
	return t
}
