package calendar

import (
	"testing"

	"workdate/models"
)

func TestAddBusinessDays(t *testing.T) {
	cal := testCalendar(t)
	holidays := models.NewHolidaySet("2025-10-08") // Wednesday

	cases := []struct {
		name string
		in   string
		days int
		want string
	}{
		{"zero is a no-op", "2025-10-06 09:30:00", 0, "2025-10-06 09:30:00"},
		{"one weekday", "2025-10-06 09:30:00", 1, "2025-10-07 09:30:00"},
		{"skips the holiday", "2025-10-07 09:30:00", 1, "2025-10-09 09:30:00"},
		{"skips the weekend", "2025-10-03 15:45:30", 1, "2025-10-06 15:45:30"},
		{"week with holiday inside", "2025-10-06 09:30:00", 5, "2025-10-14 09:30:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddBusinessDays(cal, localTime(t, cal, tc.in), tc.days, holidays)
			want := localTime(t, cal, tc.want)
			if !got.Equal(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}
}

func TestAddBusinessDaysNeverLandsOnNonWorkingDay(t *testing.T) {
	cal := testCalendar(t)
	holidays := models.NewHolidaySet("2025-10-08", "2025-10-13")

	start := localTime(t, cal, "2025-10-03 11:00:00")
	for days := 1; days <= 15; days++ {
		got := AddBusinessDays(cal, start, days, holidays)
		if !IsWorkingDay(cal, got, holidays) {
			t.Fatalf("days=%d landed on non-working date %s", days, cal.DateKey(got))
		}
		if got.Hour() != 11 || got.Minute() != 0 {
			t.Fatalf("days=%d did not preserve time of day: %v", days, got)
		}
	}
}

func TestAddBusinessHours(t *testing.T) {
	cal := testCalendar(t)
	holidays := models.NewHolidaySet("2025-10-08")

	cases := []struct {
		name  string
		in    string
		hours float64
		want  string
	}{
		{"zero is a no-op", "2025-10-06 09:00:00", 0, "2025-10-06 09:00:00"},
		{"within the morning segment", "2025-10-06 09:00:00", 2, "2025-10-06 11:00:00"},
		{"across the lunch break", "2025-10-06 11:00:00", 2, "2025-10-06 14:00:00"},
		{"full working day", "2025-10-06 08:00:00", 8, "2025-10-06 17:00:00"},
		{"spills into the next day", "2025-10-06 16:00:00", 2, "2025-10-07 09:00:00"},
		{"spills over the holiday", "2025-10-07 16:30:00", 1, "2025-10-09 08:30:00"},
		{"friday close spills to monday", "2025-10-03 17:00:00", 1, "2025-10-06 09:00:00"},
		{"fractional hours", "2025-10-06 08:00:00", 1.5, "2025-10-06 09:30:00"},
		{"fractional across lunch", "2025-10-06 11:30:00", 3, "2025-10-06 15:30:00"},
		{"sub-minute fraction rounds to the minute", "2025-10-06 08:00:00", 0.51, "2025-10-06 08:31:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddBusinessHours(cal, localTime(t, cal, tc.in), tc.hours, holidays)
			want := localTime(t, cal, tc.want)
			if !got.Equal(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}
}

func TestAddBusinessHoursSubMinuteSegmentRemainder(t *testing.T) {
	cal := testCalendar(t)
	holidays := models.HolidaySet{}

	// Twenty seconds remain before close: the segment must be consumed to
	// its exact end and the rest of the hour spills into the next day.
	start := localTime(t, cal, "2025-10-06 16:59:40")
	got := AddBusinessHours(cal, start, 1, holidays)
	want := localTime(t, cal, "2025-10-07 09:00:00")
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Same shape in the morning segment: ten seconds before lunch, the
	// segment end is hit exactly and the remainder resumes at lunch end.
	start = localTime(t, cal, "2025-10-06 11:59:50")
	got = AddBusinessHours(cal, start, 2, holidays)
	want = localTime(t, cal, "2025-10-06 15:00:00")
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAddBusinessHoursConsumesExactMinutes(t *testing.T) {
	cal := testCalendar(t)
	holidays := models.HolidaySet{}

	// 23 business hours from Monday open: two full days (8h each) plus 7h,
	// landing Wednesday 16:00.
	start := localTime(t, cal, "2025-10-06 08:00:00")
	got := AddBusinessHours(cal, start, 23, holidays)
	want := localTime(t, cal, "2025-10-08 16:00:00")
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
