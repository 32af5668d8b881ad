package calendar

import (
	"context"
	"time"
)

// BusinessDateService computes the instant reached after adding business
// days and business hours to a start instant under the working calendar.
type BusinessDateService interface {
	ComputeBusinessDate(ctx context.Context, startUTC string, days int, hours float64) (time.Time, error)
}
