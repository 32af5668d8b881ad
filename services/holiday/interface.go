package holiday

import (
	"context"

	"workdate/models"
)

// Provider supplies the current set of non-working calendar dates beyond
// weekends.
type Provider interface {
	Holidays(ctx context.Context) (models.HolidaySet, error)
}
