package availability

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// DeskUnavailable reports whether an override row for date marks the desk unavailable.
// The rows must already be scoped to one desk. Time bounds on overrides are ignored.
func DeskUnavailable(overrides []domain.DeskAvailabilityOverride, date time.Time) bool {
	for _, o := range overrides {
		if SameDate(o.Date, date) && !o.Available {
			return true
		}
	}
	return false
}
