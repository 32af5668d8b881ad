package calendar

import (
	"context"
	"time"

	"workdate/models"
	"workdate/services/holiday"
)

// DefaultBusinessDateService is the concrete implementation. Now is the
// clock used when no start instant is given; it defaults to time.Now.
type DefaultBusinessDateService struct {
	Provider holiday.Provider
	Calendar models.BusinessCalendar
	Now      func() time.Time
}

// ComputeBusinessDate resolves the start instant (given UTC string or now),
// normalizes it backward into the working window, then accumulates days
// before hours. The result is returned in UTC with second precision.
func (s *DefaultBusinessDateService) ComputeBusinessDate(ctx context.Context, startUTC string, days int, hours float64) (time.Time, error) {
	holidays, err := s.Provider.Holidays(ctx)
	if err != nil {
		return time.Time{}, err
	}

	start, err := s.resolveStart(startUTC)
	if err != nil {
		return time.Time{}, err
	}

	t := NormalizeBackward(s.Calendar, start, holidays)
	if days > 0 {
		t = AddBusinessDays(s.Calendar, t, days, holidays)
	}
	if hours > 0 {
		t = AddBusinessHours(s.Calendar, t, hours, holidays)
	}
	return t.UTC().Truncate(time.Second), nil
}

func (s *DefaultBusinessDateService) resolveStart(startUTC string) (time.Time, error) {
	if startUTC == "" {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		return now().In(s.Calendar.Location), nil
	}
	start, err := time.Parse(time.RFC3339, startUTC)
	if err != nil {
		return time.Time{}, NewInvalidDateError(startUTC)
	}
	return start.In(s.Calendar.Location), nil
}
