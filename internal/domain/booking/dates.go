package booking

import (
	"time"

	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
)

// ValidateDates enforces the two date invariants shared by booking
// creation and update: the stay must have a positive length and it must
// start strictly after now.
func ValidateDates(start, end, now time.Time) error {
	if !start.Before(end) {
		return httperr.NewBadRequest("invalid_dates", "Start date must be before end date")
	}
	if !start.After(now) {
		return httperr.NewBadRequest("invalid_dates", "Start date must be in the future")
	}
	return nil
}
